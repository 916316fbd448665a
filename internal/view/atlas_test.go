package view

import "testing"

func cellInk(t *testing.T, ch rune) int {
	t.Helper()
	img := BuildAtlas()
	col, row := glyphCell(ch)
	ink := 0
	for y := row * GlyphH; y < (row+1)*GlyphH; y++ {
		for x := col * GlyphW; x < (col+1)*GlyphW; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				ink++
			}
		}
	}
	return ink
}

func TestAtlasGlyphs(t *testing.T) {
	if n := cellInk(t, 'A'); n == 0 {
		t.Error("glyph A has no pixels")
	}
	if n := cellInk(t, ' '); n != 0 {
		t.Errorf("space has %d pixels", n)
	}
}

func TestGlyphUV(t *testing.T) {
	u0, v0, u1, v1, ok := GlyphUV(' ')
	if !ok || u0 != 0 || v0 != 0 || u1 <= u0 || v1 <= v0 {
		t.Errorf("space uv = %v %v %v %v %v", u0, v0, u1, v1, ok)
	}
	if _, _, u1, v1, ok := GlyphUV('~'); !ok || u1 > 1 || v1 > 1 {
		t.Error("last glyph outside atlas")
	}
	if _, _, _, _, ok := GlyphUV('\t'); ok {
		t.Error("control characters have no glyph")
	}
}

func TestTextWidth(t *testing.T) {
	if w := TextWidth("abc\nabcdef", 2); w != 6*GlyphW*2 {
		t.Errorf("TextWidth = %d", w)
	}
}
