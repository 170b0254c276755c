package fonts

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Glyph is one record of a Font. It implements tinyfont.Glypher so the packed
// fonts can be drawn with tinyfont onto any drivers.Displayer.
type Glyph struct {
	Rune   rune
	Offset int
	Header GlyphHeader

	f *Font
}

// Glyph looks up the record for r.
func (f *Font) Glyph(r rune) Glyph {
	off := f.GlyphOffset(r)
	return Glyph{Rune: r, Offset: off, Header: f.Header(off), f: f}
}

// GetGlyph implements tinyfont.Fonter.
func (f *Font) GetGlyph(r rune) tinyfont.Glypher {
	g := f.Glyph(r)
	return &g
}

// GetYAdvance implements tinyfont.Fonter.
func (f *Font) GetYAdvance() uint8 { return uint8(f.MaxHeight) }

// Info reports metrics with the blitter's padding: 1 px left, 2 px right.
// tinyfont positions glyphs on a baseline, taken here as the bottom of the
// font's line box.
func (g *Glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.Rune,
		Width:    uint8(g.Header.W),
		Height:   uint8(g.Header.H),
		XAdvance: uint8(g.Header.W + 3),
		XOffset:  1,
		YOffset:  int8(g.Header.YOffset - g.f.MaxHeight),
	}
}

// Draw sets the glyph's pixels to c with the top of the line box at
// y - MaxHeight. Clear pixels are left untouched.
func (g *Glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	info := g.Info()
	x0 := x + int16(info.XOffset)
	y0 := y + int16(info.YOffset)
	for row := 0; row < g.Header.H; row++ {
		for col := 0; col < g.Header.W; col++ {
			if g.f.Pixel(g.Offset, g.Header, col, row) {
				display.SetPixel(x0+int16(col), y0+int16(row), c)
			}
		}
	}
}
