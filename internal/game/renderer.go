//go:build !android

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"fountain/internal/asset"
	"fountain/internal/particle"
	"fountain/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// RendererOptions selects how billboards are built and what they sample.
type RendererOptions struct {
	Capacity      int
	Sprite        *asset.Image
	Ramp          particle.Ramp
	CPUBillboards bool
}

// Renderer is the OpenGL backend for scene.Frame.
type Renderer struct {
	cpu      bool
	capacity int

	// Billboard program: one point per particle, expanded by the geometry stage.
	pointProg uint32
	pointVAO  uint32
	pointVBO  uint32

	ptUView       int32
	ptUProjection int32
	ptUCamera     int32

	// Quad program: corners expanded on the CPU.
	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32

	qdUView       int32
	qdUProjection int32

	spriteTex uint32
	rampTex   uint32

	// Reusable render buffers to avoid per-frame heap allocations.
	records []float32
	quadBuf []float32
}

func NewRenderer(opts RendererOptions) (*Renderer, error) {
	if opts.Sprite == nil {
		return nil, fmt.Errorf("renderer: no sprite")
	}
	if len(opts.Ramp.Colors) == 0 {
		opts.Ramp = particle.DefaultRamp()
	}

	r := &Renderer{cpu: opts.CPUBillboards, capacity: opts.Capacity}

	var err error
	if r.cpu {
		r.quadProg, err = linkProgram("quad", vertexShader(quadVertSrc), fragmentShader(particleFragSrc))
		if err != nil {
			return nil, err
		}
		r.initQuadBuffers()
		gl.UseProgram(r.quadProg)
		r.qdUView = gl.GetUniformLocation(r.quadProg, gl.Str("uView\x00"))
		r.qdUProjection = gl.GetUniformLocation(r.quadProg, gl.Str("uProjection\x00"))
		bindSamplers(r.quadProg)
	} else {
		r.pointProg, err = linkProgram("billboard",
			vertexShader(billboardVertSrc), geometryShader(billboardGeomSrc), fragmentShader(particleFragSrc))
		if err != nil {
			return nil, err
		}
		r.initPointBuffers()
		gl.UseProgram(r.pointProg)
		r.ptUView = gl.GetUniformLocation(r.pointProg, gl.Str("uView\x00"))
		r.ptUProjection = gl.GetUniformLocation(r.pointProg, gl.Str("uProjection\x00"))
		r.ptUCamera = gl.GetUniformLocation(r.pointProg, gl.Str("uCamera\x00"))
		bindSamplers(r.pointProg)
	}

	r.spriteTex = uploadSprite(opts.Sprite)
	r.rampTex = uploadRamp(opts.Ramp)

	gl.BindVertexArray(0)
	gl.Disable(gl.DEPTH_TEST)
	return r, nil
}

// bindSamplers points uSprite at unit 0 and uRamp at unit 1.
func bindSamplers(prog uint32) {
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str("uSprite\x00")), 0)
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str("uRamp\x00")), 1)
	gl.Uniform1f(gl.GetUniformLocation(prog, gl.Str("uRampSize\x00")), RampTexels)
}

// Point VBO: particle.RecordFloats per particle (x, y, z, size, angle).
func (r *Renderer) initPointBuffers() {
	gl.GenVertexArrays(1, &r.pointVAO)
	gl.GenBuffers(1, &r.pointVBO)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)

	stride := int32(particle.RecordBytes)
	gl.BufferData(gl.ARRAY_BUFFER, r.capacity*int(stride), nil, gl.STREAM_DRAW)
	// aPosition (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(3*4))
	// aAngle (float)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, stride, glOffset(4*4))
}

// Quad VBO: six vertices per particle, particle.QuadVertexFloats each.
func (r *Renderer) initQuadBuffers() {
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)

	stride := int32(particle.QuadVertexFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, r.capacity*6*int(stride), nil, gl.STREAM_DRAW)
	// aPosition (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aTexcoord (vec2)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(3*4))

	r.quadBuf = make([]float32, 0, r.capacity*6*particle.QuadVertexFloats)
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.pointVBO, r.quadVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.pointVAO, r.quadVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.pointProg, r.quadProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.spriteTex, r.rampTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

// BeginFrame sets the viewport and clears to the background colour.
func (r *Renderer) BeginFrame(vp scene.Viewport) {
	gl.Viewport(0, 0, int32(vp.Width), int32(vp.Height))
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

var _ scene.Backend = (*Renderer)(nil)
