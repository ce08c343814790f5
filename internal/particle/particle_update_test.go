package particle

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStepIsPure(t *testing.T) {
	in := Particle{
		Position:        mgl32.Vec3{0.1, 0.2, 0.3},
		Size:            0.3,
		Angle:           1,
		Velocity:        mgl32.Vec3{0.5, -0.5, 0.25},
		AngularVelocity: 2,
	}
	orig := in
	a := Step(in, 1.0/60)
	b := Step(in, 1.0/60)
	if a != b {
		t.Errorf("Step not reproducible: %+v vs %+v", a, b)
	}
	if in != orig {
		t.Errorf("Step mutated its input: %+v", in)
	}
}

func TestStepOrder(t *testing.T) {
	const dt = 0.1
	p := Step(Particle{Size: 0.4, AngularVelocity: 3}, dt)

	drag := math.Exp(-Drag * dt)
	wantVY := Gravity * dt * drag
	if math.Abs(float64(p.Velocity.Y())-wantVY) > 1e-6 {
		t.Errorf("vy = %v, want %v", p.Velocity.Y(), wantVY)
	}
	if math.Abs(float64(p.Position.Y())-wantVY*dt) > 1e-6 {
		t.Errorf("y = %v, want %v", p.Position.Y(), wantVY*dt)
	}
	if want := 0.4 * math.Exp(-Shrink*dt); math.Abs(float64(p.Size)-want) > 1e-6 {
		t.Errorf("size = %v, want %v", p.Size, want)
	}
	if math.Abs(float64(p.Angle)-0.3) > 1e-6 {
		t.Errorf("angle = %v, want 0.3", p.Angle)
	}
}

func TestDragIsFrameRateIndependent(t *testing.T) {
	start := Particle{Size: 0.4, Velocity: mgl32.Vec3{1, 0, -2}}

	coarse := Step(start, 0.1)
	fine := start
	for i := 0; i < 100; i++ {
		fine = Step(fine, 0.001)
	}
	want := math.Exp(-Drag * 0.1)
	for _, axis := range []int{0, 2} {
		c, f := float64(coarse.Velocity[axis]), float64(fine.Velocity[axis])
		w := want * float64(start.Velocity[axis])
		if math.Abs(c-w) > 5e-5 || math.Abs(f-w) > 5e-5 {
			t.Errorf("axis %d: coarse %v fine %v, want %v", axis, c, f, w)
		}
	}
	if math.Abs(float64(coarse.Size-fine.Size)) > 5e-5 {
		t.Errorf("size coarse %v fine %v", coarse.Size, fine.Size)
	}
}

func TestExpired(t *testing.T) {
	tests := []struct {
		name string
		p    Particle
		want bool
	}{
		{"Fresh", Particle{Size: 0.3}, false},
		{"At ceiling", Particle{Position: mgl32.Vec3{0, 1, 0}, Size: 0.3}, false},
		{"Above ceiling", Particle{Position: mgl32.Vec3{0, 1.01, 0}, Size: 0.3}, true},
		{"At min size", Particle{Size: MinSize}, false},
		{"Below min size", Particle{Size: 0.0009}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Expired(); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSystemGrowsOnePerStep(t *testing.T) {
	s := NewSystem(256, NewRand(42))
	for i := 1; i <= 10; i++ {
		s.Update(0.1)
		if s.Pool.Len() != i {
			t.Fatalf("after step %d: Len = %d, want %d", i, s.Pool.Len(), i)
		}
	}
	if s.Steps != 10 {
		t.Errorf("Steps = %d, want 10", s.Steps)
	}
}

func TestSystemIgnoresNonPositiveDt(t *testing.T) {
	s := NewSystem(4, NewRand(1))
	s.Update(0)
	s.Update(-1)
	if s.Pool.Len() != 0 || s.Steps != 0 {
		t.Errorf("Len = %d Steps = %d, want 0 0", s.Pool.Len(), s.Steps)
	}
}

func TestSystemInvariants(t *testing.T) {
	s := NewSystem(64, NewRand(5))
	for i := 0; i < 2000; i++ {
		s.Update(1.0 / 60)
		if s.Pool.Len() > s.Pool.Max {
			t.Fatalf("step %d: Len %d exceeds capacity %d", i, s.Pool.Len(), s.Pool.Max)
		}
		for k, p := range s.Pool.P {
			if p.Size < MinSize || p.Position.Y() > MaxHeight {
				t.Fatalf("step %d slot %d observable while expired: %+v", i, k, p)
			}
		}
	}
	if s.Pool.Len() != 64 {
		t.Errorf("Len = %d, want full pool", s.Pool.Len())
	}
	if s.Respawns == 0 {
		t.Error("no particle was ever recycled")
	}
}

func TestSizeDecayCrossesThresholdBeforeDeadline(t *testing.T) {
	const dt = 0.1
	p := Particle{Size: 0.4}
	crossed := -1.0
	for i := 1; i <= 35; i++ {
		p = Step(p, dt)
		if p.Size < MinSize {
			crossed = float64(i) * dt
			break
		}
	}
	if crossed < 0 || crossed > 3.5+1e-9 {
		t.Fatalf("size never crossed %v within 3.5s (last %v)", MinSize, p.Size)
	}
}

func TestSystemResetsDecayedParticle(t *testing.T) {
	s := NewSystem(1, NewRand(11))
	s.Update(0.1)
	s.Pool.P[0].Size = 0.4

	reset := false
	for i := 0; i < 35 && !reset; i++ {
		before := s.Respawns
		s.Update(0.1)
		if s.Respawns > before {
			reset = true
			p := s.Pool.P[0]
			if p.Velocity != (mgl32.Vec3{}) || p.Angle != 0 || p.Position.Y() != 0 {
				t.Errorf("reset slot not in spawn state: %+v", p)
			}
		}
	}
	if !reset {
		t.Error("particle not reset within 3.5s of simulated time")
	}
}

func TestSystemDeterministicWithSeed(t *testing.T) {
	a := NewSystem(32, NewRand(77))
	b := NewSystem(32, NewRand(77))
	for i := 0; i < 300; i++ {
		a.Update(1.0 / 60)
		b.Update(1.0 / 60)
	}
	ba := a.Pool.Snapshot(nil)
	bb := b.Pool.Snapshot(nil)
	for i := range ba {
		if ba[i] != bb[i] {
			t.Fatalf("snapshots diverge at %d: %v vs %v", i, ba[i], bb[i])
		}
	}
}
