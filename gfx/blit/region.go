package blit

import "math/bits"

// Fixed masks for the last word of a line: pixels 320..335 are visible,
// the low 16 bits lie past the right edge of the panel.
const (
	lastWordVisible = 0xffff_0000
)

// regionMasks computes the word span of [x0, x1) and the partial masks for
// its first and last words.
func regionMasks(x0, x1 int) (lowWord, highWord int, lowMask, highMask uint32) {
	lowWord = x0 >> 5
	highWord = (x1 - 1) >> 5
	lowMask = 0xffff_ffff >> uint(x0&0x1f)
	highMask = 0xffff_ffff << uint(31-((x1-1)&0x1f))
	if lowWord == highWord {
		lowMask &= highMask
	}
	return
}

// ClearRegion sets every pixel of cr to background.
func ClearRegion(fb *FrameBuffer, cr ClipRegion) {
	if !cr.Valid() {
		return
	}
	lowWord, highWord, lowMask, highMask := regionMasks(cr.X0, cr.X1)
	for y := cr.Y0; y < cr.Y1; y++ {
		base := y * WordsPerLine
		fb[base+lowWord] |= lowMask
		for w := lowWord + 1; w < highWord; w++ {
			fb[base+w] = 0xffff_ffff
		}
		if lowWord < highWord {
			fb[base+highWord] |= highMask
		}
	}
}

// InvertRegion flips every pixel of cr.
func InvertRegion(fb *FrameBuffer, cr ClipRegion) {
	if !cr.Valid() {
		return
	}
	lowWord, highWord, lowMask, highMask := regionMasks(cr.X0, cr.X1)
	for y := cr.Y0; y < cr.Y1; y++ {
		base := y * WordsPerLine
		fb[base+lowWord] ^= lowMask
		for w := lowWord + 1; w < highWord; w++ {
			fb[base+w] ^= 0xffff_ffff
		}
		if lowWord < highWord {
			fb[base+highWord] ^= highMask
		}
	}
}

// OutlineRegion draws a full width box over yr: 2 clear lines, a solid
// line inset 2 px, bordered background lines, a solid line, 2 clear lines.
// Regions shorter than 6 lines are left alone.
func OutlineRegion(fb *FrameBuffer, yr YRegion) {
	if yr.Y0 < 0 || yr.Y1 > Lines || yr.Y1-yr.Y0 < 6 {
		return
	}
	LineFillClear(fb, yr.Y0)
	LineFillClear(fb, yr.Y0+1)
	LineFillPaddedSolid(fb, yr.Y0+2)
	for y := yr.Y0 + 3; y < yr.Y1-3; y++ {
		LineFillPaddedBorder(fb, y)
	}
	LineFillPaddedSolid(fb, yr.Y1-3)
	LineFillClear(fb, yr.Y1-2)
	LineFillClear(fb, yr.Y1-1)
}

// LineFillClear sets line y to background.
func LineFillClear(fb *FrameBuffer, y int) {
	if y < 0 || y >= Lines {
		return
	}
	base := y * WordsPerLine
	for i := 0; i < WordsPerLine-1; i++ {
		fb[base+i] = 0xffff_ffff
	}
	fb[base+WordsPerLine-1] = lastWordVisible
}

// LineFillPattern copies a full width pattern into line y.
func LineFillPattern(fb *FrameBuffer, y int, pattern *BlitRow) {
	if y < 0 || y >= Lines || pattern == nil {
		return
	}
	copy(fb[y*WordsPerLine:], pattern[:])
}

// LineFillPaddedSolid fills line y with ink, leaving 2 px clear at each end.
func LineFillPaddedSolid(fb *FrameBuffer, y int) {
	if y < 0 || y >= Lines {
		return
	}
	base := y * WordsPerLine
	fb[base] = 0xc000_0000
	for i := 1; i < WordsPerLine-1; i++ {
		fb[base+i] = 0
	}
	fb[base+WordsPerLine-1] = 0x0003_0000
}

// LineFillPaddedBorder fills line y with background, with a 1 px ink border
// inset 2 px from each end.
func LineFillPaddedBorder(fb *FrameBuffer, y int) {
	if y < 0 || y >= Lines {
		return
	}
	base := y * WordsPerLine
	fb[base] = 0xdfff_ffff
	for i := 1; i < WordsPerLine-1; i++ {
		fb[base+i] = 0xffff_ffff
	}
	fb[base+WordsPerLine-1] = 0xfffb_0000
}

// Stripes fills the frame buffer with a diagonal test pattern.
func Stripes(fb *FrameBuffer) {
	pattern := uint32(0xffff_ff03)
	i := 0
	for line := 0; line < Lines; line++ {
		for w := 0; w < WordsPerLine-1; w++ {
			fb[i] = pattern
			i++
		}
		fb[i] = pattern & lastWordVisible
		i++
		pattern = bits.RotateLeft32(pattern, -1)
	}
}
