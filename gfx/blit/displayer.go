package blit

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer adapts a FrameBuffer to drivers.Displayer so driver-level code
// (tinyfont, shape helpers) can draw into the packed words. Light colors map
// to background, dark colors to ink.
type Displayer struct {
	fb      *FrameBuffer
	present func() error
}

var _ drivers.Displayer = (*Displayer)(nil)

// NewDisplayer wraps fb. present is called by Display and may be nil.
func NewDisplayer(fb *FrameBuffer, present func() error) *Displayer {
	return &Displayer{fb: fb, present: present}
}

func (d *Displayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return PxPerLine, Lines
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= PxPerLine || iy < 0 || iy >= Lines {
		return
	}
	i := iy*WordsPerLine + (ix >> 5)
	bit := uint32(0x8000_0000) >> uint(ix&0x1f)
	if isInk(c) {
		d.fb[i] &^= bit
	} else {
		d.fb[i] |= bit
	}
}

func (d *Displayer) Display() error {
	if d.present == nil {
		return nil
	}
	return d.present()
}

// FillRectangle paints a rectangle clamped to the screen.
func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil {
		return nil
	}
	cr := ClipRegion{
		X0: clampInt(int(x), 0, PxPerLine),
		Y0: clampInt(int(y), 0, Lines),
		X1: clampInt(int(x)+int(width), 0, PxPerLine),
		Y1: clampInt(int(y)+int(height), 0, Lines),
	}
	if !cr.Valid() {
		return nil
	}
	ClearRegion(d.fb, cr)
	if isInk(c) {
		InvertRegion(d.fb, cr)
	}
	return nil
}

// isInk uses integer luma (ITU-R BT.601 weights) against the midpoint.
func isInk(c color.RGBA) bool {
	luma := (299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000
	return luma < 0x80
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
