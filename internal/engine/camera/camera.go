// Package camera builds the view-projection transforms that feed the
// Globals uniform block.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/spriteforge/pkg/math"
)

// Screen is a 2D camera over pixel coordinates: the origin sits at the
// top-left and Y grows downward, matching the UV convention.
type Screen struct {
	Width  float32
	Height float32
	Near   float32
	Far    float32
}

// NewScreen creates a screen camera for the given viewport size.
func NewScreen(width, height float32) *Screen {
	return &Screen{
		Width:  width,
		Height: height,
		Near:   -100,
		Far:    100,
	}
}

// Resize updates the viewport dimensions.
func (c *Screen) Resize(width, height float32) {
	c.Width = width
	c.Height = height
}

// ViewProjection returns the pixel-space orthographic transform.
func (c *Screen) ViewProjection() math.Mat4 {
	return math.Ortho(0, c.Width, c.Height, 0, c.Near, c.Far)
}

// Orbit circles a center point at a distance, for inspecting meshes.
type Orbit struct {
	Center math.Vec3

	Distance float32
	Pitch    float32
	Yaw      float32

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	FovY float32
	Near float32
	Far  float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbit creates an orbit camera with defaults suited to unit meshes.
func NewOrbit() *Orbit {
	return &Orbit{
		Distance:        3,
		Pitch:           0.5,
		MinDistance:     0.5,
		MaxDistance:     50,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		FovY:            math32.Pi / 4,
		Near:            0.1,
		Far:             100,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *Orbit) Position() math.Vec3 {
	x := c.Distance * math32.Cos(c.Pitch) * math32.Sin(c.Yaw)
	y := c.Distance * math32.Sin(c.Pitch)
	z := c.Distance * math32.Cos(c.Pitch) * math32.Cos(c.Yaw)

	return math.Vec3{
		X: c.Center.X + x,
		Y: c.Center.Y + y,
		Z: c.Center.Z + z,
	}
}

// ViewProjection returns the perspective transform for the given aspect
// ratio.
func (c *Orbit) ViewProjection(aspect float32) math.Mat4 {
	view := math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
	proj := math.Perspective(c.FovY, aspect, c.Near, c.Far)
	return proj.Mul(view)
}

// HandleDrag updates rotation from a mouse drag delta.
func (c *Orbit) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom updates distance from a scroll delta.
func (c *Orbit) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
