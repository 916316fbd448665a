package view

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph atlas layout: printable ASCII in a 16-column grid of basicfont cells.
const (
	GlyphW     = 7
	GlyphH     = 13
	GlyphFirst = 32
	GlyphLast  = 126
	AtlasCols  = 16
	AtlasRows  = (GlyphLast - GlyphFirst + AtlasCols) / AtlasCols
	AtlasW     = GlyphW * AtlasCols
	AtlasH     = GlyphH * AtlasRows
)

// BuildAtlas rasterizes basicfont.Face7x13 into a white-on-transparent atlas.
func BuildAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasW, AtlasH))
	face := basicfont.Face7x13
	d := font.Drawer{Dst: img, Src: image.NewUniform(color.White), Face: face}
	for ch := GlyphFirst; ch <= GlyphLast; ch++ {
		col, row := glyphCell(rune(ch))
		d.Dot = fixed.P(col*GlyphW, row*GlyphH+face.Ascent)
		d.DrawString(string(rune(ch)))
	}
	return img
}

func glyphCell(ch rune) (col, row int) {
	i := int(ch) - GlyphFirst
	return i % AtlasCols, i / AtlasCols
}

// GlyphUV returns the atlas texture coordinates of ch; ok is false for
// characters outside printable ASCII.
func GlyphUV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < GlyphFirst || ch > GlyphLast {
		return 0, 0, 0, 0, false
	}
	col, row := glyphCell(ch)
	u0 = float32(col*GlyphW) / AtlasW
	v0 = float32(row*GlyphH) / AtlasH
	u1 = float32((col+1)*GlyphW) / AtlasW
	v1 = float32((row+1)*GlyphH) / AtlasH
	return u0, v0, u1, v1, true
}

// TextWidth is the width of the longest line of text at scale, in pixels.
func TextWidth(text string, scale float32) int {
	lineLen, maxLineLen := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			maxLineLen = max(maxLineLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	maxLineLen = max(maxLineLen, lineLen)
	return int(float32(maxLineLen*GlyphW) * scale)
}
