package behaviour

// Component is the base interface for all components.
// Components are attached to game objects and driven by the host frame loop.
type Component interface {
	// Lifecycle methods
	Awake()     // Called when component is first attached
	Start()     // Called once before the first Update
	Update()    // Called every frame while enabled
	OnDestroy() // Called when the component or its object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods.
// Scripts embed this and override only the methods they need.
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()     {}
func (c *BaseComponent) Start()     {}
func (c *BaseComponent) Update()    {}
func (c *BaseComponent) OnDestroy() {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// GameObject groups components under a name.
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Components []Component

	started   map[Component]bool
	destroyed bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		started:    make(map[Component]bool),
	}
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			delete(obj.started, comp)
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		obj.startComponent(comp)
	}
}

// startComponent runs Start at most once per component, deferring it until
// the component is enabled.
func (obj *GameObject) startComponent(comp Component) bool {
	if obj.started[comp] {
		return true
	}
	if !comp.GetEnabled() {
		return false
	}
	if obj.started == nil {
		obj.started = make(map[Component]bool)
	}
	obj.started[comp] = true
	comp.Start()
	return true
}

func (obj *GameObject) internalUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if !comp.GetEnabled() || !obj.startComponent(comp) {
			continue
		}
		comp.Update()
	}
}

// Destroy calls OnDestroy on every component once and deactivates the object.
func (obj *GameObject) Destroy() {
	if obj.destroyed {
		return
	}
	obj.destroyed = true
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
