//go:build !android

package game

import (
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"fountain/internal/config"
	"fountain/internal/logging"
	"fountain/internal/particle"
	"fountain/internal/scene"
)

// Run opens the window and drives the fountain until it is closed.
func Run(cfg config.Config) error {
	runtime.LockOSThread()
	log := logging.Logger()

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return &InitError{Stage: "gl", Err: err}
	}
	log.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	if cfg.Audio {
		if err := InitAudio(); err != nil {
			log.Warn("audio init failed, continuing without sound", "err", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug("simulation seed", "seed", seed)

	sprite, err := loadSprite(cfg.SpritePath)
	if err != nil {
		return err
	}

	// GL state.
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer(RendererOptions{
		Capacity:      cfg.Capacity,
		Sprite:        sprite,
		Ramp:          particle.DefaultRamp(),
		CPUBillboards: cfg.CPUBillboards,
	})
	if err != nil {
		return err
	}
	defer rend.Destroy()

	frame := scene.NewFrame(particle.NewSystem(cfg.Capacity, particle.NewRand(seed)))
	subscribeEvents(frame.Events)

	input := NewInput()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDelta {
			dt = MaxFrameDelta
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		frame.Viewport = scene.Viewport{Width: fbW, Height: fbH}
		if frame.Viewport.Empty() {
			// Minimised: keep the clock and input edges current, draw nothing.
			input.Snapshot(window)
			continue
		}

		frame.Tick(dt, input.Snapshot(window), rend)
		window.SwapBuffers()
	}

	log.Info("shutdown", "t", frame.Time, "steps", frame.Particles.Steps,
		"respawns", frame.Particles.Respawns)
	return nil
}
