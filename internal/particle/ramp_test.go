package particle

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	red    = mgl32.Vec4{1, 0, 0, 1}
	yellow = mgl32.Vec4{1, 1, 0, 1}
	white  = mgl32.Vec4{1, 1, 1, 1}
)

func TestDefaultRampColors(t *testing.T) {
	r := DefaultRamp()
	want := []mgl32.Vec4{red, yellow, white}
	if len(r.Colors) != len(want) {
		t.Fatalf("len = %d, want %d", len(r.Colors), len(want))
	}
	for i := range want {
		if r.Colors[i] != want[i] {
			t.Errorf("Colors[%d] = %v, want %v", i, r.Colors[i], want[i])
		}
	}
}

func TestRampLookup(t *testing.T) {
	r := DefaultRamp()
	tests := []struct {
		name string
		t    float32
		want mgl32.Vec4
	}{
		{"Start is first control", 0, red},
		{"End is last control", 1, white},
		{"Middle hits control", 0.5, yellow},
		{"Quarter", 0.25, mgl32.Vec4{1, 0.5, 0, 1}},
		{"Three quarters", 0.75, mgl32.Vec4{1, 1, 0.5, 1}},
		{"Below range clamps", -2, red},
		{"Above range clamps", 7, white},
		{"NaN clamps", float32(math.NaN()), red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Lookup(tt.t)
			if !near4(got, tt.want, 1e-6) {
				t.Errorf("Lookup(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestRampBoundariesExact(t *testing.T) {
	r := Ramp{Colors: []mgl32.Vec4{{0.1, 0.2, 0.3, 0.4}, {0.9, 0.7, 0.5, 0.3}}}
	if got := r.Lookup(0); got != r.Colors[0] {
		t.Errorf("Lookup(0) = %v, want %v", got, r.Colors[0])
	}
	if got := r.Lookup(1); got != r.Colors[1] {
		t.Errorf("Lookup(1) = %v, want %v", got, r.Colors[1])
	}
}

func TestRampContinuous(t *testing.T) {
	r := DefaultRamp()
	const steps = 1000
	prev := r.Lookup(0)
	for k := 1; k <= steps; k++ {
		cur := r.Lookup(float32(k) / steps)
		if d := cur.Sub(prev).Len(); d > 0.01 {
			t.Fatalf("jump of %v at t=%v", d, float32(k)/steps)
		}
		prev = cur
	}
}

func TestRampDegenerateTables(t *testing.T) {
	if got := (Ramp{}).Lookup(0.5); got != (mgl32.Vec4{}) {
		t.Errorf("empty ramp = %v, want zero", got)
	}
	one := Ramp{Colors: []mgl32.Vec4{yellow}}
	for _, v := range []float32{0, 0.3, 1} {
		if got := one.Lookup(v); got != yellow {
			t.Errorf("single-control Lookup(%v) = %v", v, got)
		}
	}
}

func TestRampShadeCarriesAlpha(t *testing.T) {
	r := DefaultRamp()
	tests := []struct {
		alpha float32
		want  mgl32.Vec4
	}{
		{0, mgl32.Vec4{1, 0, 0, 0}},
		{0.5, mgl32.Vec4{1, 1, 0, 0.5}},
		{1, white},
		{1.5, white},
	}
	for _, tt := range tests {
		if got := r.Shade(tt.alpha); !near4(got, tt.want, 1e-6) {
			t.Errorf("Shade(%v) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestRampBake(t *testing.T) {
	texels := DefaultRamp().Bake(3)
	want := []uint8{
		255, 0, 0, 255,
		255, 255, 0, 255,
		255, 255, 255, 255,
	}
	if len(texels) != len(want) {
		t.Fatalf("len = %d, want %d", len(texels), len(want))
	}
	for i := range want {
		if texels[i] != want[i] {
			t.Errorf("texel byte %d = %d, want %d", i, texels[i], want[i])
		}
	}
	if got := len(DefaultRamp().Bake(0)); got != 2*4 {
		t.Errorf("Bake(0) len = %d, want 8", got)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		r, g, b, want float32
	}{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0.2, 0.5, 0.9, 0.5},
		{0.9, 0.2, 0.5, 0.5},
		{0.5, 0.9, 0.2, 0.5},
		{1, 0, 0, 0},
		{0.3, 0.3, 0.8, 0.3},
	}
	for _, tt := range tests {
		if got := Median(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Median(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}
