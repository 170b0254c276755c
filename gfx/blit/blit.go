// Package blit composites glyphs and fill patterns onto a 1 bit per pixel
// LCD frame buffer packed 32 pixels per word.
//
// The MSB of the first word of a line is its leftmost pixel. A set bit is a
// clear (background) pixel; a cleared bit is ink. Every operation checks its
// bounds up front and does nothing when they are malformed, so a caller bug
// never writes outside the region it named.
package blit

import (
	"image"
	"image/color"
)

// LCD frame buffer bounds.
const (
	WordsPerLine = 11
	PxPerLine    = 336
	Lines        = 536
	FrameBufSize = WordsPerLine * Lines
)

// FrameBuffer is the word-packed raster of the whole LCD.
type FrameBuffer [FrameBufSize]uint32

// BlitRow is a full-width line pattern.
type BlitRow [WordsPerLine]uint32

// YRegion is a run of full-width lines, Y0 included, Y1 excluded.
type YRegion struct {
	Y0 int
	Y1 int
}

// ClipRegion is a pixel rectangle: X0 and Y0 included, X1 and Y1 excluded.
type ClipRegion struct {
	X0 int
	X1 int
	Y0 int
	Y1 int
}

// Valid reports whether cr lies inside the frame buffer and is non-empty.
func (cr ClipRegion) Valid() bool {
	return cr.X0 >= 0 && cr.Y0 >= 0 &&
		cr.X1 <= PxPerLine && cr.Y1 <= Lines &&
		cr.X0 < cr.X1 && cr.Y0 < cr.Y1
}

// Full returns the region covering the whole screen.
func Full() ClipRegion {
	return ClipRegion{X0: 0, X1: PxPerLine, Y0: 0, Y1: Lines}
}

// Ink reports whether the pixel at (x, y) is drawn (bit clear).
func (fb *FrameBuffer) Ink(x, y int) bool {
	if x < 0 || x >= PxPerLine || y < 0 || y >= Lines {
		return false
	}
	w := fb[y*WordsPerLine+(x>>5)]
	return w&(0x8000_0000>>uint(x&0x1f)) == 0
}

// Line returns the words backing line y.
func (fb *FrameBuffer) Line(y int) []uint32 {
	if y < 0 || y >= Lines {
		return nil
	}
	base := y * WordsPerLine
	return fb[base : base+WordsPerLine]
}

// Palette maps bit values to colors: 0 is ink, 1 is background.
var Palette = color.Palette{color.Black, color.White}

// Image copies the visible pixels into a two color paletted image.
func (fb *FrameBuffer) Image() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, PxPerLine, Lines), Palette)
	for y := 0; y < Lines; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+PxPerLine]
		for x := range row {
			if !fb.Ink(x, y) {
				row[x] = 1
			}
		}
	}
	return img
}
