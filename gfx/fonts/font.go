// Package fonts holds the packed bitmap typefaces used by the blitter.
//
// A font is a read-only array of 32-bit words made of glyph records plus an
// index from code point to record offset. Record format:
//
//	[offset+0]: (w << 16) | (h << 8) | yOffset, each field 8 bits
//	[offset+1 .. offset+ceil(w*h/32)]: packed 1-bit pixels, 1 = set
//
// Pixels are packed top to bottom, left to right, with the MSB of the first
// payload word holding the top left pixel. Rows follow each other with no
// padding, so a row may straddle two payload words.
package fonts

// MaxGlyphWidth is the widest glyph row the blitter can place. A row of up to
// 32 pixels always fits within two consecutive words.
const MaxGlyphWidth = 32

// Block maps a contiguous range of code points to record offsets.
type Block struct {
	Lo    rune
	Hi    rune
	Index []uint16
}

func (b Block) contains(r rune) bool { return r >= b.Lo && r <= b.Hi }

// Font is an immutable packed bitmap typeface.
type Font struct {
	Name      string
	MaxHeight int
	Data      []uint32
	Blocks    []Block

	// Replacement is the record offset used for code points not covered by
	// any block (U+FFFD).
	Replacement int
}

// GlyphHeader holds the metrics unpacked from a record header word.
type GlyphHeader struct {
	W       int
	H       int
	YOffset int
}

// UnpackHeader splits a header word of the form (w<<16 | h<<8 | yOffset).
func UnpackHeader(header uint32) GlyphHeader {
	return GlyphHeader{
		W:       int((header << 8) >> 24),
		H:       int((header << 16) >> 24),
		YOffset: int((header << 24) >> 24),
	}
}

// Pack is the inverse of UnpackHeader. Fields are masked to 8 bits.
func (h GlyphHeader) Pack() uint32 {
	return uint32(h.W&0xff)<<16 | uint32(h.H&0xff)<<8 | uint32(h.YOffset&0xff)
}

// PayloadWords returns the number of pixel words following the header.
func (h GlyphHeader) PayloadWords() int {
	return (h.W*h.H + 31) >> 5
}

// GlyphOffset returns the offset into Data of the record for r.
func (f *Font) GlyphOffset(r rune) int {
	for _, b := range f.Blocks {
		if b.contains(r) {
			return int(b.Index[r-b.Lo])
		}
	}
	return f.Replacement
}

// Header unpacks the record header at offset.
func (f *Font) Header(offset int) GlyphHeader {
	return UnpackHeader(f.Data[offset])
}

// Covers reports whether r has its own glyph rather than the replacement.
func (f *Font) Covers(r rune) bool {
	for _, b := range f.Blocks {
		if b.contains(r) {
			return true
		}
	}
	return false
}

// Runes returns every code point with a glyph, in ascending order.
func (f *Font) Runes() []rune {
	var out []rune
	for _, b := range f.Blocks {
		for r := b.Lo; r <= b.Hi; r++ {
			out = append(out, r)
		}
	}
	return out
}

// Pixel reports whether the pixel at (col, row) of the record at offset is set.
func (f *Font) Pixel(offset int, h GlyphHeader, col, row int) bool {
	if col < 0 || col >= h.W || row < 0 || row >= h.H {
		return false
	}
	pos := row*h.W + col
	w := f.Data[offset+1+(pos>>5)]
	return w&(0x8000_0000>>uint(pos&0x1f)) != 0
}

var (
	// Regular is the body text typeface.
	Regular = &Font{
		Name:      "Regular",
		MaxHeight: regularMaxHeight,
		Data:      regularData[:],
		Blocks: []Block{
			{Lo: 0x20, Hi: 0x7e, Index: regularBasicLatin[:]},
			{Lo: 0xa0, Hi: 0xff, Index: regularLatin1[:]},
			{Lo: 0x152, Hi: 0x153, Index: regularLatinExtendedA[:]},
			{Lo: 0x2018, Hi: 0x2022, Index: regularGeneralPunctuation[:]},
			{Lo: 0x20ac, Hi: 0x20ac, Index: regularCurrencySymbols[:]},
			{Lo: 0xfffd, Hi: 0xfffd, Index: regularSpecials[:]},
		},
		Replacement: int(regularSpecials[0]),
	}

	// Small is the compact typeface.
	Small = &Font{
		Name:      "Small",
		MaxHeight: smallMaxHeight,
		Data:      smallData[:],
		Blocks: []Block{
			{Lo: 0x20, Hi: 0x7e, Index: smallBasicLatin[:]},
			{Lo: 0xa0, Hi: 0xff, Index: smallLatin1[:]},
			{Lo: 0x152, Hi: 0x153, Index: smallLatinExtendedA[:]},
			{Lo: 0x2018, Hi: 0x2022, Index: smallGeneralPunctuation[:]},
			{Lo: 0x20ac, Hi: 0x20ac, Index: smallCurrencySymbols[:]},
			{Lo: 0xfffd, Hi: 0xfffd, Index: smallSpecials[:]},
		},
		Replacement: int(smallSpecials[0]),
	}

	// Bold is Regular emboldened, plus the UI sprites in the Private Use Area.
	Bold = mustBuildBold()
)

// All lists the compiled-in fonts.
func All() []*Font { return []*Font{Bold, Regular, Small} }
