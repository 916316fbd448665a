package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Circle vertex shader: one point sprite per slot, sized to the drawn diameter.
const circleVertSrc = `#version 410 core

layout(location = 0) in vec4 aCircle; // x, y, radius, unused
layout(location = 1) in vec4 aColor;  // r, g, b, about-to-be-absorbed

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;
out float vRadiusPx;

void main() {
    vec2 screen = (aCircle.xy - uCamera) * uZoom;
    gl_Position = vec4(screen / (uResolution * 0.5), 0.0, 1.0);
    vRadiusPx = aCircle.z * uZoom;
    // Inactive slots collapse to nothing.
    gl_PointSize = aCircle.z > 0.0 ? 2.0 * vRadiusPx + 4.0 : 0.0;
    vColor = aColor;
}
` + "\x00"

// Circle fragment shader: soft-edged disc with a rim; flagged circles pulse.
const circleFragSrc = `#version 410 core

uniform float uTime;
uniform float uEdge;

in vec4 vColor;
in float vRadiusPx;
out vec4 FragColor;

void main() {
    float size = 2.0 * vRadiusPx + 4.0;
    float d = length(gl_PointCoord - vec2(0.5)) * size; // px from centre
    float alpha = 1.0 - smoothstep(vRadiusPx - uEdge, vRadiusPx, d);
    if (alpha <= 0.0) discard;

    vec3 col = vColor.rgb;
    float rim = smoothstep(vRadiusPx - 3.0 * uEdge, vRadiusPx - uEdge, d);
    col = mix(col * 0.85, min(col * 1.35, vec3(1.0)), rim);
    if (vColor.a > 0.5) {
        float pulse = 0.5 + 0.5 * sin(uTime * 12.0);
        col = mix(col, vec3(1.0), 0.45 * pulse);
    }
    FragColor = vec4(col, alpha);
}
` + "\x00"

// Arena vertex shader: full-screen triangle pair in NDC.
const arenaVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// Arena fragment shader: reconstructs world position per pixel and draws the
// arena fill and its border.
const arenaFragSrc = `#version 410 core

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;
uniform float uBorder;
uniform float uBorderPx;
uniform vec3 uArena;
uniform vec3 uOutside;
uniform vec3 uLine;

out vec4 FragColor;

void main() {
    vec2 world = (gl_FragCoord.xy - uResolution * 0.5) / uZoom + uCamera;
    float edge = max(abs(world.x), abs(world.y));
    float px = (edge - uBorder) * uZoom;
    vec3 col = px < 0.0 ? uArena : uOutside;
    float line = 1.0 - smoothstep(uBorderPx * 0.5, uBorderPx * 0.5 + 1.0, abs(px));
    FragColor = vec4(mix(col, uLine, line), 1.0);
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: white glyph atlas tinted per vertex.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
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
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
