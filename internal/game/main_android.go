//go:build android

package game

import (
	"encoding/binary"
	"math"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"fountain/internal/asset"
	"fountain/internal/config"
	"fountain/internal/logging"
	"fountain/internal/particle"
	"fountain/internal/scene"
)

// GLES2 has no geometry stage or 1D textures: quads come from
// particle.AppendQuads and the ramp is a RampTexels x 1 2D texture.
const mobileQuadVertSrc = `
attribute vec3 aPosition;
attribute vec2 aTexcoord;
uniform mat4 uView;
uniform mat4 uProjection;
varying vec2 vTexcoord;
void main() {
  vTexcoord = aTexcoord;
  gl_Position = uProjection * uView * vec4(aPosition, 1.0);
}`

const mobileParticleFragSrc = `
precision mediump float;
uniform sampler2D uSprite;
uniform sampler2D uRamp;
uniform float uRampSize;
varying vec2 vTexcoord;
float median(vec3 v) {
  return max(min(v.r, v.g), min(max(v.r, v.g), v.b));
}
void main() {
  float alpha = clamp(median(texture2D(uSprite, vTexcoord).rgb), 0.0, 1.0);
  float u = (alpha * (uRampSize - 1.0) + 0.5) / uRampSize;
  gl_FragColor = vec4(texture2D(uRamp, vec2(u, 0.5)).rgb, alpha);
}`

// mobileRenderer is the GLES2 backend for scene.Frame.
type mobileRenderer struct {
	glctx gl.Context

	prog      gl.Program
	vbo       gl.Buffer
	aPosition gl.Attrib
	aTexcoord gl.Attrib
	uView     gl.Uniform
	uProj     gl.Uniform
	spriteTex gl.Texture
	rampTex   gl.Texture
	glReady   bool

	records   []float32
	quadBuf   []float32
	uploadBuf []byte
}

func newMobileRenderer(glctx gl.Context) (*mobileRenderer, error) {
	prog, err := linkProgram(glctx, mobileQuadVertSrc, mobileParticleFragSrc)
	if err != nil {
		return nil, err
	}
	r := &mobileRenderer{glctx: glctx, prog: prog}

	r.aPosition = glctx.GetAttribLocation(prog, "aPosition")
	r.aTexcoord = glctx.GetAttribLocation(prog, "aTexcoord")
	r.uView = glctx.GetUniformLocation(prog, "uView")
	r.uProj = glctx.GetUniformLocation(prog, "uProjection")

	glctx.UseProgram(prog)
	glctx.Uniform1i(glctx.GetUniformLocation(prog, "uSprite"), 0)
	glctx.Uniform1i(glctx.GetUniformLocation(prog, "uRamp"), 1)
	glctx.Uniform1f(glctx.GetUniformLocation(prog, "uRampSize"), RampTexels)

	r.vbo = glctx.CreateBuffer()

	sprite := asset.RadialSprite(SpriteSize)
	r.spriteTex = glctx.CreateTexture()
	glctx.BindTexture(gl.TEXTURE_2D, r.spriteTex)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	glctx.TexImage2D(gl.TEXTURE_2D, 0, int(gl.RGBA), sprite.Width, sprite.Height, gl.RGBA, gl.UNSIGNED_BYTE, sprite.Pix)

	r.rampTex = glctx.CreateTexture()
	glctx.BindTexture(gl.TEXTURE_2D, r.rampTex)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	glctx.TexImage2D(gl.TEXTURE_2D, 0, int(gl.RGBA), RampTexels, 1, gl.RGBA, gl.UNSIGNED_BYTE,
		particle.DefaultRamp().Bake(RampTexels))

	r.glReady = true
	return r, nil
}

func (r *mobileRenderer) destroy() {
	if !r.glReady {
		return
	}
	r.glctx.DeleteBuffer(r.vbo)
	r.glctx.DeleteTexture(r.spriteTex)
	r.glctx.DeleteTexture(r.rampTex)
	r.glctx.DeleteProgram(r.prog)
	r.glReady = false
}

func (r *mobileRenderer) BeginFrame(vp scene.Viewport) {
	r.glctx.Viewport(0, 0, vp.Width, vp.Height)
	r.glctx.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	r.glctx.Clear(gl.COLOR_BUFFER_BIT)
}

// Upload keeps the records; quads are built in Draw once the camera is known.
func (r *mobileRenderer) Upload(records []float32) {
	r.records = records
}

func (r *mobileRenderer) Draw(v scene.View) {
	r.quadBuf = particle.AppendQuads(r.quadBuf[:0], r.records, v.Camera)
	if len(r.quadBuf) == 0 {
		return
	}
	glctx := r.glctx
	glctx.UseProgram(r.prog)
	glctx.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	r.uploadBuf = f32bytes(r.uploadBuf[:0], r.quadBuf)
	glctx.BufferData(gl.ARRAY_BUFFER, r.uploadBuf, gl.STREAM_DRAW)

	const stride = particle.QuadVertexFloats * 4
	glctx.EnableVertexAttribArray(r.aPosition)
	glctx.EnableVertexAttribArray(r.aTexcoord)
	glctx.VertexAttribPointer(r.aPosition, 3, gl.FLOAT, false, stride, 0)
	glctx.VertexAttribPointer(r.aTexcoord, 2, gl.FLOAT, false, stride, 3*4)

	glctx.UniformMatrix4fv(r.uView, v.View[:])
	glctx.UniformMatrix4fv(r.uProj, v.Projection[:])

	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.BindTexture(gl.TEXTURE_2D, r.spriteTex)
	glctx.ActiveTexture(gl.TEXTURE1)
	glctx.BindTexture(gl.TEXTURE_2D, r.rampTex)

	glctx.Enable(gl.BLEND)
	glctx.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	glctx.DrawArrays(gl.TRIANGLES, 0, len(r.quadBuf)/particle.QuadVertexFloats)
	glctx.Disable(gl.BLEND)

	glctx.DisableVertexAttribArray(r.aPosition)
	glctx.DisableVertexAttribArray(r.aTexcoord)
}

// f32bytes appends vals to dst as little-endian float32.
func f32bytes(dst []byte, vals []float32) []byte {
	for _, v := range vals {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}

func compileShader(glctx gl.Context, kind gl.Enum, stage, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		log := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, &CompileError{Program: "quad", Stage: stage, Log: log}
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, "vertex", vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, "fragment", fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		log := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, &LinkError{Program: "quad", Log: log}
	}
	return prog, nil
}

// mobileInput follows the first finger down and turns its gesture into
// camera orbit and pause taps.
type mobileInput struct {
	gesture     scene.Gesture
	activeTouch touch.Sequence
	tapped      bool
}

func (in *mobileInput) handleTouch(e touch.Event, cam *scene.Camera) {
	switch e.Type {
	case touch.TypeBegin:
		if !in.gesture.Down() {
			in.activeTouch = e.Sequence
			in.gesture.Begin(e.X, e.Y, time.Now())
		}
	case touch.TypeMove:
		if e.Sequence == in.activeTouch {
			in.gesture.Move(e.X, e.Y, cam)
		}
	case touch.TypeEnd:
		if e.Sequence == in.activeTouch && in.gesture.End(time.Now()) {
			in.tapped = true
		}
	}
}

// snapshot returns the frame input and clears the pending tap.
func (in *mobileInput) snapshot() scene.Input {
	s := scene.Input{TogglePause: in.tapped}
	in.tapped = false
	return s
}

func RunAndroid() {
	log := logging.Logger()
	cfg := config.Default()

	seed := uint64(time.Now().UnixNano())
	frame := scene.NewFrame(particle.NewSystem(cfg.Capacity, particle.NewRand(seed)))
	subscribeEvents(frame.Events)

	if err := InitAudio(); err != nil {
		log.Warn("audio init failed, continuing without sound", "err", err)
	}

	var input mobileInput

	app.Main(func(a app.App) {
		var glctx gl.Context
		var rend *mobileRenderer
		var last time.Time

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					r, err := newMobileRenderer(glctx)
					if err != nil {
						panic(&InitError{Stage: "gles", Err: err})
					}
					rend = r
					last = time.Now()
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if rend != nil {
						rend.destroy()
						rend = nil
					}
					glctx = nil
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				frame.Viewport = scene.Viewport{Width: e.WidthPx, Height: e.HeightPx}

			case touch.Event:
				input.handleTouch(e, &frame.Camera)

			case paint.Event:
				if glctx == nil || rend == nil || frame.Viewport.Empty() {
					continue
				}
				now := time.Now()
				dt := now.Sub(last).Seconds()
				last = now
				if dt > MaxFrameDelta {
					dt = MaxFrameDelta
				}
				frame.Tick(dt, input.snapshot(), rend)
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
