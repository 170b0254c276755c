package blit

import "lcdkit/gfx/fonts"

// Padding around each glyph. StringWidth relies on left+right == 3.
const (
	padLeft  = 1
	padRight = 2
)

// XorChar blits the glyph for c with XOR, its line box anchored at
// (cr.X0, cr.Y0) and padded 1 px left and 2 px right. Drawing the same glyph
// twice at the same anchor restores the frame buffer.
//
// Rows that would land at or below cr.Y1 are not drawn. The return value is
// the width of the glyph plus padding, or 0 if the region is malformed, the
// glyph is wider than 32 px, or the glyph would run off the end of the line.
//
// Source rows are packed back to back, so row y starts at bit y*w of the
// payload and may straddle two payload words:
//
//	w=11, row 2 => payload[0] bits 9..0, then payload[1] bit 31
//	| payload[0]                              | payload[1] |
//	| 0123 4567 89a              67 89ab cdef | 0          |
//	|              b cdef 0123 45             |  123 45... |
//
// The destination run may likewise straddle two frame buffer words:
//
//	x 1..7   => word 0 bits 30..26
//	x 30..36 => word 0 bits 1..0, word 1 bits 31..28
func XorChar(fb *FrameBuffer, cr ClipRegion, c rune, f *fonts.Font) int {
	if !cr.Valid() {
		return 0
	}
	// Look up glyph and unpack its header
	gpo := f.GlyphOffset(c)
	gh := f.Header(gpo)
	if gh.W > fonts.MaxGlyphWidth {
		return 0
	}
	x0 := cr.X0 + padLeft
	if x0+gh.W > PxPerLine {
		return 0
	}
	// Word alignment for the destination
	destLowWord := x0 >> 5
	pxInDestLowWord := 32 - (x0 & 0x1f)

	y0 := cr.Y0 + gh.YOffset
	yMax := gh.H
	if y0+gh.H > cr.Y1 {
		yMax = cr.Y1 - y0
	}
	for y := 0; y < yMax; y++ {
		// The low word may also hold pixels of the next row or, for the
		// last row, padding bits. Shifting left drops what came before this
		// row; shifting right drops what comes after it.
		pxOffset := y * gh.W
		lowWord := gpo + 1 + (pxOffset >> 5)
		pxInLowWord := 32 - (pxOffset & 0x1f)
		pattern := f.Data[lowWord] << uint(32-pxInLowWord) >> uint(32-gh.W)
		if gh.W > pxInLowWord {
			pxInHighWord := gh.W - pxInLowWord
			pattern |= f.Data[lowWord+1] >> uint(32-pxInHighWord)
		}

		base := (y0 + y) * WordsPerLine
		fb[base+destLowWord] ^= pattern << uint(32-gh.W) >> uint(32-pxInDestLowWord)
		if pxInDestLowWord < gh.W {
			fb[base+destLowWord+1] ^= pattern << uint(32-(gh.W-pxInDestLowWord))
		}
	}
	return padLeft + gh.W + padRight
}

// CharWidth returns the glyph width for c, without padding.
func CharWidth(c rune, f *fonts.Font) int {
	return f.Header(f.GlyphOffset(c)).W
}

// StringWidth returns the width of s as drawn by StringLeft, minus the outer
// padding: 3 px between glyphs, none past the ends. An empty string is 0.
func StringWidth(s string, f *fonts.Font) int {
	w := 0
	for _, c := range s {
		w += CharWidth(c, f) + padLeft + padRight
	}
	if w == 0 {
		return 0
	}
	return w - 1
}

// StringLeft blits s with XOR, left aligned at cr.X0 and top aligned at
// cr.Y0, and returns the total advance. A glyph that cannot be drawn advances
// by 0 and the rest of the string is still attempted.
func StringLeft(fb *FrameBuffer, cr ClipRegion, s string, f *fonts.Font) int {
	start := cr.X0
	for _, c := range s {
		cr.X0 += XorChar(fb, cr, c, f)
	}
	return cr.X0 - start
}

// StringCenter blits s centered between cr.X0 and cr.X1. Strings wider than
// the region are left aligned.
func StringCenter(fb *FrameBuffer, cr ClipRegion, s string, f *fonts.Font) int {
	w := StringWidth(s, f)
	x := cr.X0 + ((cr.X1 - cr.X0) >> 1) - (w >> 1)
	if x > cr.X0 {
		cr.X0 = x
	}
	return StringLeft(fb, cr, s, f)
}

// StringBoldLeft blits s in the bold font.
func StringBoldLeft(fb *FrameBuffer, cr ClipRegion, s string) int {
	return StringLeft(fb, cr, s, fonts.Bold)
}

// StringRegularLeft blits s in the regular font.
func StringRegularLeft(fb *FrameBuffer, cr ClipRegion, s string) int {
	return StringLeft(fb, cr, s, fonts.Regular)
}

// StringSmallLeft blits s in the small font.
func StringSmallLeft(fb *FrameBuffer, cr ClipRegion, s string) int {
	return StringLeft(fb, cr, s, fonts.Small)
}
