package scene

import (
	"math"
	"time"
)

// Drag gesture tuning, in screen pixels.
const (
	DragYawPerPx   = 0.006 // radians of orbit per dragged pixel
	DragPitchPerPx = 0.004
	TapMaxTravel   = 12.0 // longer drags do not count as a tap
	TapMaxDuration = 300 * time.Millisecond
)

// Gesture tracks one pointer: dragging orbits the camera, a short
// stationary press is a tap.
type Gesture struct {
	down         bool
	lastX, lastY float32
	travel       float32
	start        time.Time
}

func (g *Gesture) Down() bool { return g.down }

// Begin starts tracking at (x, y). A second Begin while down is ignored.
func (g *Gesture) Begin(x, y float32, now time.Time) {
	if g.down {
		return
	}
	g.down = true
	g.lastX, g.lastY = x, y
	g.travel = 0
	g.start = now
}

// Move orbits cam by the distance travelled since the last call.
func (g *Gesture) Move(x, y float32, cam *Camera) {
	if !g.down {
		return
	}
	dx, dy := x-g.lastX, y-g.lastY
	g.lastX, g.lastY = x, y
	g.travel += float32(math.Hypot(float64(dx), float64(dy)))
	cam.Yaw += dx * DragYawPerPx
	cam.Pitch += dy * DragPitchPerPx
	cam.Clamp()
}

// End stops tracking and reports whether the press was a tap.
func (g *Gesture) End(now time.Time) bool {
	if !g.down {
		return false
	}
	g.down = false
	return g.travel < TapMaxTravel && now.Sub(g.start) < TapMaxDuration
}
