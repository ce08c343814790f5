//go:build !android

package game

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Billboard vertex shader: passes each particle record through to the
// geometry stage untouched.
const billboardVertSrc = `#version 410 core

layout(location = 0) in vec3 aPosition;
layout(location = 1) in float aSize;
layout(location = 2) in float aAngle;

out float vSize;
out float vAngle;

void main() {
    gl_Position = vec4(aPosition, 1.0);
    vSize = aSize;
    vAngle = aAngle;
}
` + "\x00"

// Billboard geometry shader: expands one point into a camera-facing quad
// rotated by its angle. Must stay in step with particle.BillboardBasis.
const billboardGeomSrc = `#version 410 core

layout(points) in;
layout(triangle_strip, max_vertices = 4) out;

uniform mat4 uView;
uniform mat4 uProjection;
uniform vec3 uCamera;

in float vSize[];
in float vAngle[];

out vec2 vTexcoord;

void main() {
    vec3 center = gl_in[0].gl_Position.xyz;
    float size = vSize[0];
    float angle = vAngle[0];

    vec3 toCamera = uCamera - center;
    vec3 Z = length(toCamera) < 1e-6 ? vec3(0.0, 0.0, 1.0) : normalize(toCamera);
    vec3 X1 = cross(vec3(0.0, 1.0, 0.0), Z);
    if (length(X1) < 1e-6) {
        X1 = cross(vec3(0.0, 0.0, 1.0), Z);
    }
    X1 = normalize(X1);
    vec3 Y1 = normalize(cross(Z, X1));

    float c = cos(angle);
    float s = sin(angle);
    vec3 X = X1 * c + Y1 * s;
    vec3 Y = -X1 * s + Y1 * c;

    mat4 viewProjection = uProjection * uView;
    for (int i = -1; i <= 1; i += 2) {
        for (int j = -1; j <= 1; j += 2) {
            vec3 corner = center + float(i) * size * X + float(j) * size * Y;
            gl_Position = viewProjection * vec4(corner, 1.0);
            vTexcoord = vec2(float(i + 1) * 0.5, float(j + 1) * 0.5);
            EmitVertex();
        }
    }
    EndPrimitive();
}
` + "\x00"

// Quad vertex shader: CPU-expanded billboard corners (particle.AppendQuads).
const quadVertSrc = `#version 410 core

layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec2 aTexcoord;

uniform mat4 uView;
uniform mat4 uProjection;

out vec2 vTexcoord;

void main() {
    gl_Position = uProjection * uView * vec4(aPosition, 1.0);
    vTexcoord = aTexcoord;
}
` + "\x00"

// Particle fragment shader: median of the sprite mask drives the colour
// ramp, and also becomes the output alpha for additive blending.
// uRampSize maps alpha onto baked texel centres so alpha 0 and 1 land
// exactly on the first and last control colours.
const particleFragSrc = `#version 410 core

uniform sampler2D uSprite;
uniform sampler1D uRamp;
uniform float uRampSize;

in vec2 vTexcoord;
out vec4 FragColor;

float median(vec3 v) {
    return max(min(v.r, v.g), min(max(v.r, v.g), v.b));
}

void main() {
    float alpha = clamp(median(texture(uSprite, vTexcoord).rgb), 0.0, 1.0);
    float u = (alpha * (uRampSize - 1.0) + 0.5) / uRampSize;
    FragColor = vec4(texture(uRamp, u).rgb, alpha);
}
` + "\x00"

type shaderSource struct {
	stage string
	kind  uint32
	src   string
}

func vertexShader(src string) shaderSource {
	return shaderSource{stage: "vertex", kind: gl.VERTEX_SHADER, src: src}
}

func geometryShader(src string) shaderSource {
	return shaderSource{stage: "geometry", kind: gl.GEOMETRY_SHADER, src: src}
}

func fragmentShader(src string) shaderSource {
	return shaderSource{stage: "fragment", kind: gl.FRAGMENT_SHADER, src: src}
}

func compileShader(program string, s shaderSource) (uint32, error) {
	shader := gl.CreateShader(s.kind)
	csources, free := gl.Strs(s.src)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, &CompileError{Program: program, Stage: s.stage, Log: strings.TrimRight(buf, "\x00")}
	}
	return shader, nil
}

// linkProgram compiles every stage and links them into one program.
func linkProgram(name string, stages ...shaderSource) (uint32, error) {
	shaders := make([]uint32, 0, len(stages))
	release := func() {
		for _, sh := range shaders {
			gl.DeleteShader(sh)
		}
	}
	for _, s := range stages {
		sh, err := compileShader(name, s)
		if err != nil {
			release()
			return 0, err
		}
		shaders = append(shaders, sh)
	}

	program := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(program, sh)
	}
	gl.LinkProgram(program)
	for _, sh := range shaders {
		gl.DetachShader(program, sh)
	}
	release()

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, &LinkError{Program: name, Log: strings.TrimRight(buf, "\x00")}
	}
	return program, nil
}
