//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"fountain/internal/scene"
)

const pauseKey = glfw.KeySpace

// Held keys mapped to camera controls.
var keyBindings = []struct {
	key glfw.Key
	ctl scene.Key
}{
	{glfw.KeyUp, scene.KeyCloser},
	{glfw.KeyDown, scene.KeyFarther},
	{glfw.KeyLeft, scene.KeyYawLeft},
	{glfw.KeyRight, scene.KeyYawRight},
	{glfw.KeyW, scene.KeyPitchUp},
	{glfw.KeyS, scene.KeyPitchDown},
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Snapshot samples the keyboard once for the coming frame.
func (in *Input) Snapshot(window *glfw.Window) scene.Input {
	var s scene.Input
	for _, b := range keyBindings {
		s.Down.Set(b.ctl, window.GetKey(b.key) == glfw.Press)
	}
	s.TogglePause = in.JustPressed(window, pauseKey)
	return s
}
