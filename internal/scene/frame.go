// Package scene owns the per-frame orchestration of the fountain: pause
// state, orbit camera, simulation stepping and the hand-off to a rendering
// backend.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"fountain/internal/logging"
	"fountain/internal/particle"
)

type Viewport struct {
	Width, Height int
}

func (v Viewport) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

// View is everything a backend needs to expand and draw the uploaded
// particle records.
type View struct {
	Viewport   Viewport
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Camera     mgl32.Vec3 // eye position, billboards face it
	Count      int        // particle records in the last upload
}

// Backend consumes one frame. Calls arrive in order BeginFrame, Upload, Draw.
type Backend interface {
	BeginFrame(vp Viewport)
	Upload(records []float32)
	Draw(v View)
}

type Frame struct {
	State    State
	Time     float64 // simulated seconds, frozen while paused
	Camera   Camera
	Viewport Viewport
	Keys     KeySet

	Particles *particle.System
	Events    *EventBus

	buf     []float32
	wasFull bool
}

func NewFrame(sys *particle.System) *Frame {
	return &Frame{
		State:     StateRunning,
		Camera:    DefaultCamera(),
		Particles: sys,
		Events:    NewEventBus(),
		buf:       make([]float32, 0, sys.Pool.Max*particle.RecordFloats),
	}
}

func (f *Frame) Paused() bool { return f.State == StatePaused }

func (f *Frame) TogglePause() {
	ev := Event{Time: f.Time, Count: f.Particles.Pool.Len()}
	if f.State == StateRunning {
		f.State = StatePaused
		ev.Type = EventPaused
	} else {
		f.State = StateRunning
		ev.Type = EventResumed
	}
	logging.Logger().Debug("simulation state", "state", f.State, "t", f.Time)
	f.Events.Emit(ev)
}

// Advance applies in and, unless paused, steps the simulation by dt.
func (f *Frame) Advance(dt float64, in Input) {
	f.Keys = in.Down
	if in.TogglePause {
		f.TogglePause()
	}
	f.Camera.Update(dt, in.Down)

	if f.Paused() || dt <= 0 {
		return
	}
	f.Time += dt
	f.Particles.Update(dt)

	if full := f.Particles.Pool.Full(); full && !f.wasFull {
		f.wasFull = true
		f.Events.Emit(Event{Type: EventPoolFull, Time: f.Time, Count: f.Particles.Pool.Len()})
	}
}

// Render snapshots the pool and hands it to b with the current camera.
func (f *Frame) Render(b Backend) {
	if f.Viewport.Empty() {
		return
	}
	b.BeginFrame(f.Viewport)
	f.buf = f.Particles.Pool.Snapshot(f.buf)
	b.Upload(f.buf)
	b.Draw(View{
		Viewport:   f.Viewport,
		View:       f.Camera.View(),
		Projection: f.Camera.Projection(f.Viewport.Width, f.Viewport.Height),
		Camera:     f.Camera.Position(),
		Count:      len(f.buf) / particle.RecordFloats,
	})
}

// Tick runs one complete frame.
func (f *Frame) Tick(dt float64, in Input, b Backend) {
	f.Advance(dt, in)
	f.Render(b)
}
