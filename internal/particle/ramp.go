package particle

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ramp is an ordered table of control colours sampled like a linearly
// filtered 1D texture.
type Ramp struct {
	Colors []mgl32.Vec4
}

// DefaultRamp runs red, yellow, white.
func DefaultRamp() Ramp {
	return Ramp{Colors: []mgl32.Vec4{
		Palette.FlameCool.Vec4(1),
		Palette.FlameMid.Vec4(1),
		Palette.FlameHot.Vec4(1),
	}}
}

// Lookup interpolates between the two controls bracketing t*(N-1).
// t is clamped to [0,1]; NaN maps to 0.
func (r Ramp) Lookup(t float32) mgl32.Vec4 {
	n := len(r.Colors)
	switch n {
	case 0:
		return mgl32.Vec4{}
	case 1:
		return r.Colors[0]
	}
	t = clamp01(t)

	pos := t * float32(n-1)
	i := int(pos)
	if i >= n-1 {
		return r.Colors[n-1]
	}
	frac := pos - float32(i)
	if frac == 0 {
		return r.Colors[i]
	}
	return lerpVec4(r.Colors[i], r.Colors[i+1], frac)
}

// Shade resolves the output colour for a sprite alpha: ramp colour with the
// alpha itself as the output alpha.
func (r Ramp) Shade(alpha float32) mgl32.Vec4 {
	alpha = clamp01(alpha)
	c := r.Lookup(alpha)
	c[3] = alpha
	return c
}

// Bake samples the ramp into n RGBA8 texels spanning [0,1] end to end, for
// upload as a 1D texture.
func (r Ramp) Bake(n int) []uint8 {
	if n < 2 {
		n = 2
	}
	out := make([]uint8, 0, n*4)
	for k := 0; k < n; k++ {
		c := r.Lookup(float32(k) / float32(n-1))
		for _, ch := range c {
			out = append(out, uint8(math.Round(float64(clamp01(ch))*255)))
		}
	}
	return out
}

// Median of three mask channels. Robust against the colour fringes a plain
// average picks up at anti-aliased sprite edges.
func Median(r, g, b float32) float32 {
	return max(min(r, g), min(max(r, g), b))
}

func clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpVec4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}
