package particle

import "github.com/go-gl/mathgl/mgl32"

// Spawn ranges.
const (
	spawnSpread     = 1.0 // x and z drawn from [-spawnSpread, spawnSpread)
	spawnSizeSteps  = 11  // size takes one of 11 values
	spawnSizeMin    = 0.2
	spawnSizeStep   = 1.0 / 10.0 / 5.0
	spawnMaxAngular = 5.0
)

// Emitter produces fresh fountain particles from a random source.
type Emitter struct {
	rng Source
}

func NewEmitter(rng Source) *Emitter {
	if rng == nil {
		rng = NewRand(1)
	}
	return &Emitter{rng: rng}
}

// New returns a particle resting on the ground plane with zero velocity and
// zero angle.
func (e *Emitter) New() Particle {
	var p Particle
	e.Respawn(&p)
	return p
}

// Respawn overwrites p with a fresh particle.
func (e *Emitter) Respawn(p *Particle) {
	x := float32(e.rng.RangeF(-spawnSpread, spawnSpread))
	z := float32(e.rng.RangeF(-spawnSpread, spawnSpread))
	*p = Particle{
		Position:        mgl32.Vec3{x, 0, z},
		Size:            spawnSize(e.rng.Intn(spawnSizeSteps)),
		AngularVelocity: float32(e.rng.RangeF(-spawnMaxAngular, spawnMaxAngular)),
	}
}

func spawnSize(step int) float32 {
	return float32(float64(step)*spawnSizeStep + spawnSizeMin)
}
