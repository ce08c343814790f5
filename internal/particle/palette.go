package particle

import "github.com/go-gl/mathgl/mgl32"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Vec4 converts c to a normalized colour with the given alpha.
func (c RGB) Vec4(a float32) mgl32.Vec4 {
	return mgl32.Vec4{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, a}
}

var Palette = struct {
	Background RGB
	FlameCool  RGB // ramp start, faint sprite edges
	FlameMid   RGB
	FlameHot   RGB // ramp end, sprite core
}{
	Background: RGB{R: 0, G: 0, B: 0},
	FlameCool:  RGB{R: 255, G: 0, B: 0},
	FlameMid:   RGB{R: 255, G: 255, B: 0},
	FlameHot:   RGB{R: 255, G: 255, B: 255},
}
