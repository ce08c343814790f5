package particle

import "math"

// decays holds the exponential decay factors for one time step.
// Computed once per frame instead of per particle.
type decays struct {
	drag   float32 // exp(-Drag * dt)
	shrink float32 // exp(-Shrink * dt)
}

func computeDecays(dt float64) decays {
	return decays{
		drag:   float32(math.Exp(-Drag * dt)),
		shrink: float32(math.Exp(-Shrink * dt)),
	}
}

// Step advances one particle by dt. It is pure; expiry is left to the caller.
func Step(p Particle, dt float64) Particle {
	step(&p, dt, computeDecays(dt))
	return p
}

func step(p *Particle, dt float64, d decays) {
	fdt := float32(dt)
	p.Velocity[1] += Gravity * fdt
	p.Velocity = p.Velocity.Mul(d.drag)
	p.Position = p.Position.Add(p.Velocity.Mul(fdt))
	p.Size *= d.shrink
	p.Angle += p.AngularVelocity * fdt
}

// System runs the fountain: one spawn per step while below capacity, then
// integration with in-place respawn of expired particles.
type System struct {
	Pool    *Pool
	Emitter *Emitter

	Steps    uint64 // simulated steps so far
	Respawns uint64 // expired particles recycled so far
}

func NewSystem(capacity int, rng Source) *System {
	return &System{
		Pool:    NewPool(capacity),
		Emitter: NewEmitter(rng),
	}
}

// Update performs one simulated step. Non-positive dt is ignored.
func (s *System) Update(dt float64) {
	if dt <= 0 {
		return
	}
	s.Pool.Spawn(s.Emitter)

	d := computeDecays(dt)
	s.Pool.ForEach(dt, func(p *Particle, dt float64) {
		step(p, dt, d)
		if p.Expired() {
			s.Emitter.Respawn(p)
			s.Respawns++
		}
	})
	s.Steps++
}
