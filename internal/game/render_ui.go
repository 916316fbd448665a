package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"absorb/internal/sim"
	"absorb/internal/view"
)

// maxTextQuads bounds the initial text VBO; FlushText re-specifies it when a frame needs more.
const maxTextQuads = 512

// InitFont rasterizes the glyph atlas and sets up the text rendering pipeline.
func (r *Renderer) InitFont() error {
	atlas := view.BuildAtlas()
	b := atlas.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// pos(2) + uv(2) + color(4) per vertex.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxTextQuads*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// DrawChar queues one glyph as a textured quad in screen pixel space (origin top-left).
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col sim.RGB, alpha float32) {
	u0, v0, u1, v1, ok := view.GlyphUV(ch)
	if !ok {
		return
	}
	w := float32(view.GlyphW) * scale
	h := float32(view.GlyphH) * scale
	cr, cg, cb := rgbf(col)

	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, alpha,
		sx+w, sy, u1, v0, cr, cg, cb, alpha,
		sx, sy+h, u0, v1, cr, cg, cb, alpha,
		sx+w, sy, u1, v0, cr, cg, cb, alpha,
		sx+w, sy+h, u1, v1, cr, cg, cb, alpha,
		sx, sy+h, u0, v1, cr, cg, cb, alpha,
	)
}

func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col sim.RGB) {
	r.drawString(text, sx, sy, scale, col, 1)
}

func (r *Renderer) drawString(text string, sx, sy int, scale float32, col sim.RGB, alpha float32) {
	advance := float32(view.GlyphW) * scale
	lineAdvance := float32(view.GlyphH) * scale
	x, y := float32(sx), float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = float32(sx)
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col, alpha)
		x += advance
	}
}

// DrawStringCentered queues text horizontally centred on cx with its top at sy.
func (r *Renderer) DrawStringCentered(text string, cx, sy int, scale float32, col sim.RGB) {
	r.DrawString(text, cx-view.TextWidth(text, scale)/2, sy, scale, col)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
