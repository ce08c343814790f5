package game

import "fountain/internal/particle"

const WindowTitle = "Particle Fountain"

// Required OpenGL core profile. 4.1 is the newest macOS exposes and already
// has geometry shaders.
const (
	GLMajor = 4
	GLMinor = 1
)

// Frame clock.
const MaxFrameDelta = 0.1 // seconds; longer hitches are simulated as this

// Textures.
const (
	RampTexels = 256 // baked colour ramp resolution
	SpriteSize = 64  // procedural sprite edge when no file is configured
)

// Background clear colour.
var ClearColor = particle.Palette.Background.Vec4(1)
