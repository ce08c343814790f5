package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit camera defaults and limits.
const (
	DefaultDistance = 2.0
	DefaultHeight   = 0.5
	MinDistance     = 0.2
	MaxDistance     = 20.0
	MaxPitch        = 1.4 // radians either side of level

	DistanceRate = 3.0 // units/s
	YawRate      = 3.0 // rad/s
	PitchRate    = 1.5 // rad/s

	FieldOfView = math.Pi / 2
	NearPlane   = 0.1
	FarPlane    = 100.0
)

// Camera orbits the fountain. The view is built as
// translate(0, -Height, -Distance) * rotX(Pitch) * rotY(Yaw).
type Camera struct {
	Distance float32
	Height   float32
	Yaw      float32
	Pitch    float32
}

func DefaultCamera() Camera {
	return Camera{Distance: DefaultDistance, Height: DefaultHeight}
}

// Update applies held controls for dt seconds.
func (c *Camera) Update(dt float64, keys KeySet) {
	d := float32(dt)
	if keys.Has(KeyCloser) {
		c.Distance -= DistanceRate * d
	}
	if keys.Has(KeyFarther) {
		c.Distance += DistanceRate * d
	}
	if keys.Has(KeyYawLeft) {
		c.Yaw -= YawRate * d
	}
	if keys.Has(KeyYawRight) {
		c.Yaw += YawRate * d
	}
	if keys.Has(KeyPitchUp) {
		c.Pitch += PitchRate * d
	}
	if keys.Has(KeyPitchDown) {
		c.Pitch -= PitchRate * d
	}
	c.Clamp()
}

func (c *Camera) Clamp() {
	c.Distance = mgl32.Clamp(c.Distance, MinDistance, MaxDistance)
	c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.Translate3D(0, -c.Height, -c.Distance).
		Mul4(mgl32.HomogRotate3DX(c.Pitch)).
		Mul4(mgl32.HomogRotate3DY(c.Yaw))
}

// Projection for a width x height viewport. A degenerate viewport gets a
// square aspect.
func (c Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(FieldOfView, aspect, NearPlane, FarPlane)
}

// Position is the camera's world-space eye point.
func (c Camera) Position() mgl32.Vec3 {
	return c.View().Inv().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}
