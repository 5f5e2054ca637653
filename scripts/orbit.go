package scripts

import (
	"math"

	"SkyboxDimmer/internal/behaviour"
	"SkyboxDimmer/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

// OrbitScript moves a celestial body on a circular orbit in the XZ plane.
type OrbitScript struct {
	behaviour.BaseComponent
	World  *scene.World
	Body   string
	Center mgl64.Vec3
	Radius float64
	Speed  float64 // radians per second
	Step   float64 // seconds per frame
	time   float64
}

func (o *OrbitScript) Start() {
	o.place()
}

func (o *OrbitScript) Update() {
	deltaTime := o.Step
	if deltaTime <= 0 {
		deltaTime = 0.016
	}
	o.time += deltaTime * o.Speed
	o.place()
}

func (o *OrbitScript) place() {
	if o.World == nil {
		return
	}
	x := math.Cos(o.time) * o.Radius
	z := math.Sin(o.time) * o.Radius
	o.World.MoveBody(o.Body, o.Center.Add(mgl64.Vec3{x, 0, z}))
}
