package particle

import "github.com/go-gl/mathgl/mgl32"

// Fountain tuning.
const (
	DefaultCapacity = 256

	Gravity = 10.0 // upward pull, units/s^2
	Drag    = 10.0 // velocity decay rate, 1/s
	Shrink  = 2.0  // size decay rate, 1/s

	MaxHeight = 1.0   // particles above this are respawned
	MinSize   = 0.001 // particles smaller than this are respawned
)

// RecordFloats is the number of float32 values uploaded per particle:
// position (3), size, angle.
const (
	RecordFloats = 5
	RecordBytes  = RecordFloats * 4
)

type Particle struct {
	Position mgl32.Vec3
	Size     float32 // half extent of the billboard
	Angle    float32 // rotation about the view axis, not wrapped

	// CPU only, never uploaded.
	Velocity        mgl32.Vec3
	AngularVelocity float32
}

// Expired reports whether p has left the fountain and must be respawned.
func (p *Particle) Expired() bool {
	return p.Position.Y() > MaxHeight || p.Size < MinSize
}

// Pool is a fixed arena of particle slots. It grows by appending until it
// reaches Max; after that slots are only ever overwritten in place.
type Pool struct {
	Max int
	P   []Particle
}

func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Pool{
		Max: capacity,
		P:   make([]Particle, 0, capacity),
	}
}

func (p *Pool) Len() int   { return len(p.P) }
func (p *Pool) Full() bool { return len(p.P) >= p.Max }

// Clear drops every particle but keeps the backing array.
func (p *Pool) Clear() {
	p.P = p.P[:0]
}

// Spawn appends a fresh particle from e and returns its slot, or -1 when the
// pool is full.
func (p *Pool) Spawn(e *Emitter) int {
	if p.Full() {
		return -1
	}
	p.P = append(p.P, e.New())
	return len(p.P) - 1
}

// Reset overwrites slot i with a fresh particle from e.
func (p *Pool) Reset(i int, e *Emitter) {
	if i < 0 || i >= len(p.P) {
		return
	}
	e.Respawn(&p.P[i])
}

// SpawnOrReset appends while below capacity; once full it overwrites slot i,
// which must hold an expired particle.
func (p *Pool) SpawnOrReset(i int, e *Emitter) int {
	if idx := p.Spawn(e); idx >= 0 {
		return idx
	}
	p.Reset(i, e)
	return i
}

// ForEach hands every live particle to fn for in-place mutation.
func (p *Pool) ForEach(dt float64, fn func(*Particle, float64)) {
	for i := range p.P {
		fn(&p.P[i], dt)
	}
}

// Snapshot overwrites buf with the upload records of every particle.
// Format: [x, y, z, size, angle] * N.
func (p *Pool) Snapshot(buf []float32) []float32 {
	buf = buf[:0]
	for i := range p.P {
		q := &p.P[i]
		buf = append(buf, q.Position[0], q.Position[1], q.Position[2], q.Size, q.Angle)
	}
	return buf
}
