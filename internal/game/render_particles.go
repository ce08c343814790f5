//go:build !android

package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"fountain/internal/particle"
	"fountain/internal/scene"
)

// Upload streams the frame's particle records to the GPU.
// records format: [x, y, z, size, angle] * N (particle.RecordFloats per particle).
func (r *Renderer) Upload(records []float32) {
	count := len(records) / particle.RecordFloats
	if count > r.capacity {
		count = r.capacity
	}
	r.records = records[:count*particle.RecordFloats]
	if count == 0 || r.cpu {
		// Quads depend on the camera, so they are expanded in Draw.
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.records)*4, gl.Ptr(r.records))
}

// Draw renders the uploaded particles as additive, camera-facing billboards.
func (r *Renderer) Draw(v scene.View) {
	count := len(r.records) / particle.RecordFloats
	if count == 0 {
		return
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.spriteTex)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_1D, r.rampTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	if r.cpu {
		r.drawQuads(v)
	} else {
		r.drawPoints(v, count)
	}

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawPoints(v scene.View, count int) {
	gl.UseProgram(r.pointProg)
	gl.BindVertexArray(r.pointVAO)
	gl.UniformMatrix4fv(r.ptUView, 1, false, &v.View[0])
	gl.UniformMatrix4fv(r.ptUProjection, 1, false, &v.Projection[0])
	gl.Uniform3f(r.ptUCamera, v.Camera.X(), v.Camera.Y(), v.Camera.Z())
	gl.DrawArrays(gl.POINTS, 0, int32(count))
}

func (r *Renderer) drawQuads(v scene.View) {
	r.quadBuf = particle.AppendQuads(r.quadBuf[:0], r.records, v.Camera)
	if len(r.quadBuf) == 0 {
		return
	}
	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.quadBuf)*4, gl.Ptr(r.quadBuf))
	gl.UniformMatrix4fv(r.qdUView, 1, false, &v.View[0])
	gl.UniformMatrix4fv(r.qdUProjection, 1, false, &v.Projection[0])
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.quadBuf)/particle.QuadVertexFloats))
}
