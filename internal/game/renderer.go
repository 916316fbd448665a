package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"absorb/internal/sim"
	"absorb/internal/view"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Arena program: full-screen quad.
	arenaProg uint32
	arenaVAO  uint32
	arenaVBO  uint32

	arUCamera     int32
	arUZoom       int32
	arUResolution int32
	arUBorder     int32
	arUBorderPx   int32
	arUArena      int32
	arUOutside    int32
	arULine       int32

	// Circle program: point sprites fed from the two simulation buffers.
	circleProg uint32
	circleVAO  uint32
	propsVBO   uint32
	colorVBO   uint32

	ciUCamera     int32
	ciUZoom       int32
	ciUResolution int32
	ciUTime       int32
	ciUEdge       int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	arenaProg, err := linkProgram(arenaVertSrc, arenaFragSrc)
	if err != nil {
		return nil, fmt.Errorf("arena program: %w", err)
	}
	circleProg, err := linkProgram(circleVertSrc, circleFragSrc)
	if err != nil {
		gl.DeleteProgram(arenaProg)
		return nil, fmt.Errorf("circle program: %w", err)
	}
	r := &Renderer{arenaProg: arenaProg, circleProg: circleProg}

	// Arena VAO/VBO: two triangles covering NDC.
	gl.GenVertexArrays(1, &r.arenaVAO)
	gl.GenBuffers(1, &r.arenaVBO)
	gl.BindVertexArray(r.arenaVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.arenaVBO)
	quad := [12]float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(arenaProg)
	r.arUCamera = gl.GetUniformLocation(arenaProg, gl.Str("uCamera\x00"))
	r.arUZoom = gl.GetUniformLocation(arenaProg, gl.Str("uZoom\x00"))
	r.arUResolution = gl.GetUniformLocation(arenaProg, gl.Str("uResolution\x00"))
	r.arUBorder = gl.GetUniformLocation(arenaProg, gl.Str("uBorder\x00"))
	r.arUBorderPx = gl.GetUniformLocation(arenaProg, gl.Str("uBorderPx\x00"))
	r.arUArena = gl.GetUniformLocation(arenaProg, gl.Str("uArena\x00"))
	r.arUOutside = gl.GetUniformLocation(arenaProg, gl.Str("uOutside\x00"))
	r.arULine = gl.GetUniformLocation(arenaProg, gl.Str("uLine\x00"))
	gl.Uniform1f(r.arUBorderPx, BorderWidthPx)
	gl.Uniform3f(r.arUArena, rgbf(Palette.Arena))
	gl.Uniform3f(r.arUOutside, rgbf(Palette.Background))
	gl.Uniform3f(r.arULine, rgbf(Palette.Border))

	// Circle VAO: attribute 0 from the props buffer, attribute 1 from the colour buffer.
	gl.GenVertexArrays(1, &r.circleVAO)
	gl.GenBuffers(1, &r.propsVBO)
	gl.GenBuffers(1, &r.colorVBO)
	gl.BindVertexArray(r.circleVAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.propsVBO)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*sim.CircleStride*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, sim.CircleStride*4, glOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*sim.ColorStride*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, sim.ColorStride*4, glOffset(0))

	gl.UseProgram(circleProg)
	r.ciUCamera = gl.GetUniformLocation(circleProg, gl.Str("uCamera\x00"))
	r.ciUZoom = gl.GetUniformLocation(circleProg, gl.Str("uZoom\x00"))
	r.ciUResolution = gl.GetUniformLocation(circleProg, gl.Str("uResolution\x00"))
	r.ciUTime = gl.GetUniformLocation(circleProg, gl.Str("uTime\x00"))
	r.ciUEdge = gl.GetUniformLocation(circleProg, gl.Str("uEdge\x00"))
	gl.Uniform1f(r.ciUEdge, CircleEdgePx)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.arenaVBO, r.propsVBO, r.colorVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.arenaVAO, r.circleVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.arenaProg, r.circleProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// camPos is the camera centre with shake applied.
func camPos(cam *view.Camera) (float32, float32) {
	return float32(cam.X + cam.ShakeX), float32(cam.Y + cam.ShakeY)
}

// DrawArena clears the frame by drawing the arena fill, outside area and border.
func (r *Renderer) DrawArena(cam *view.Camera, border float64, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.UseProgram(r.arenaProg)
	gl.BindVertexArray(r.arenaVAO)
	cx, cy := camPos(cam)
	gl.Uniform2f(r.arUCamera, cx, cy)
	gl.Uniform1f(r.arUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.arUResolution, float32(fbW), float32(fbH))
	gl.Uniform1f(r.arUBorder, float32(border))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawCircles uploads the render buffers and draws every slot as a point sprite.
// Particle bursts use the same layout.
func (r *Renderer) DrawCircles(buf sim.RenderBuffers, cam *view.Camera, fbW, fbH int, t float64) {
	count := min(len(buf.CircleProps)/sim.CircleStride, len(buf.ColorProps)/sim.ColorStride, MaxSpriteRender)
	if count == 0 {
		return
	}

	gl.UseProgram(r.circleProg)
	gl.BindVertexArray(r.circleVAO)
	cx, cy := camPos(cam)
	gl.Uniform2f(r.ciUCamera, cx, cy)
	gl.Uniform1f(r.ciUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.ciUResolution, float32(fbW), float32(fbH))
	gl.Uniform1f(r.ciUTime, float32(t))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.propsVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, count*sim.CircleStride*4, gl.Ptr(buf.CircleProps))
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, count*sim.ColorStride*4, gl.Ptr(buf.ColorProps))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}
