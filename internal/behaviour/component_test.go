package behaviour

import (
	"testing"
)

type MockComponent struct {
	BaseComponent
	awakeCalled  bool
	startCalls   int
	updateCalls  int
	destroyCalls int
	updateCalled bool
}

func (m *MockComponent) Awake() {
	m.awakeCalled = true
}

func (m *MockComponent) Start() {
	m.startCalls++
}

func (m *MockComponent) Update() {
	m.updateCalled = true
	m.updateCalls++
}

func (m *MockComponent) OnDestroy() {
	m.destroyCalls++
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj == nil {
		t.Fatal("NewGameObject returned nil")
	}

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("New GameObject should be active by default")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)

	if len(obj.Components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.Components))
	}

	if comp.GetGameObject() != obj {
		t.Error("Component's GameObject reference not set correctly")
	}

	if !comp.GetEnabled() || !comp.awakeCalled {
		t.Error("Added component should be enabled and awake")
	}
}

func TestGameObjectRemoveComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)
	obj.RemoveComponent(comp)

	if len(obj.Components) != 0 {
		t.Errorf("Expected 0 components after removal, got %d", len(obj.Components))
	}
	if comp.destroyCalls != 1 {
		t.Errorf("Expected OnDestroy once, got %d", comp.destroyCalls)
	}
}

func TestStartRunsOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	obj.internalStart()
	obj.internalUpdate()
	obj.internalUpdate()

	if comp.startCalls != 1 {
		t.Errorf("Expected Start once, got %d", comp.startCalls)
	}
	if comp.updateCalls != 2 {
		t.Errorf("Expected 2 updates, got %d", comp.updateCalls)
	}
}

func TestStartDeferredUntilEnabled(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	comp.SetEnabled(false)

	obj.internalStart()
	obj.internalUpdate()
	if comp.startCalls != 0 || comp.updateCalls != 0 {
		t.Error("Disabled component should not start or update")
	}

	comp.SetEnabled(true)
	obj.internalUpdate()
	if comp.startCalls != 1 || comp.updateCalls != 1 {
		t.Errorf("Expected start and update after enabling, got %d/%d", comp.startCalls, comp.updateCalls)
	}
}

func TestGameObjectLiteralStarts(t *testing.T) {
	obj := &GameObject{Name: "Literal", Active: true}
	comp := &MockComponent{}
	obj.AddComponent(comp)

	obj.internalUpdate()

	if comp.startCalls != 1 {
		t.Error("Start should run for objects built without NewGameObject")
	}
}

func TestDestroyOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	obj.Destroy()
	obj.Destroy()

	if comp.destroyCalls != 1 {
		t.Errorf("Expected OnDestroy once, got %d", comp.destroyCalls)
	}
	if obj.Active {
		t.Error("Destroyed object should be inactive")
	}
}
