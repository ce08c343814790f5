package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// near3 compares component-wise with an absolute tolerance, which stays
// meaningful when the expected component is zero.
func near3(got, want mgl32.Vec3, eps float64) bool {
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > eps {
			return false
		}
	}
	return true
}

func TestDefaultCameraPosition(t *testing.T) {
	c := DefaultCamera()
	want := mgl32.Vec3{0, DefaultHeight, DefaultDistance}
	if got := c.Position(); !near3(got, want, 1e-5) {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestCameraYawOrbits(t *testing.T) {
	radius := math.Hypot(DefaultHeight, DefaultDistance)
	for _, yaw := range []float32{0.3, 1.2, math.Pi, -2} {
		c := DefaultCamera()
		c.Yaw = yaw
		p := c.Position()
		if math.Abs(float64(p.Len())-radius) > 1e-4 {
			t.Errorf("yaw %v: |pos| = %v, want %v", yaw, p.Len(), radius)
		}
		if math.Abs(float64(p.Y())-DefaultHeight) > 1e-5 {
			t.Errorf("yaw %v: height %v, want %v", yaw, p.Y(), DefaultHeight)
		}
	}
}

func TestCameraViewMapsEyeToOrigin(t *testing.T) {
	c := Camera{Distance: 3, Height: 0.7, Yaw: 0.9, Pitch: -0.4}
	eye := c.View().Mul4x1(c.Position().Vec4(1))
	if !near3(eye.Vec3(), mgl32.Vec3{}, 1e-4) {
		t.Errorf("eye in view space = %v, want origin", eye)
	}
}

func TestCameraUpdate(t *testing.T) {
	tests := []struct {
		name  string
		key   Key
		check func(c Camera) bool
	}{
		{"Closer", KeyCloser, func(c Camera) bool { return c.Distance < DefaultDistance }},
		{"Farther", KeyFarther, func(c Camera) bool { return c.Distance > DefaultDistance }},
		{"Yaw left", KeyYawLeft, func(c Camera) bool { return c.Yaw < 0 }},
		{"Yaw right", KeyYawRight, func(c Camera) bool { return c.Yaw > 0 }},
		{"Pitch up", KeyPitchUp, func(c Camera) bool { return c.Pitch > 0 }},
		{"Pitch down", KeyPitchDown, func(c Camera) bool { return c.Pitch < 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCamera()
			var keys KeySet
			keys.Set(tt.key, true)
			c.Update(0.1, keys)
			if !tt.check(c) {
				t.Errorf("unexpected camera %+v", c)
			}
		})
	}
}

func TestCameraClamp(t *testing.T) {
	c := DefaultCamera()
	var keys KeySet
	keys.Set(KeyCloser, true)
	keys.Set(KeyPitchUp, true)
	c.Update(100, keys)
	if c.Distance != MinDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, MinDistance)
	}
	if c.Pitch != MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, MaxPitch)
	}
}

func TestCameraProjectionAspect(t *testing.T) {
	c := DefaultCamera()
	wide := c.Projection(1600, 800)
	square := c.Projection(0, 0)
	// [0][0] = f/aspect, [1][1] = f
	if math.Abs(float64(wide.At(1, 1)/wide.At(0, 0))-2) > 1e-5 {
		t.Errorf("wide aspect ratio = %v", wide.At(1, 1)/wide.At(0, 0))
	}
	if square.At(0, 0) != square.At(1, 1) {
		t.Errorf("degenerate viewport should use square aspect")
	}
}

func TestKeySet(t *testing.T) {
	var s KeySet
	s.Set(KeyFarther, true)
	s.Set(KeyPitchDown, true)
	if !s.Has(KeyFarther) || !s.Has(KeyPitchDown) || s.Has(KeyCloser) {
		t.Errorf("unexpected set %b", s)
	}
	s.Set(KeyFarther, false)
	if s.Has(KeyFarther) {
		t.Error("KeyFarther should be released")
	}
}
