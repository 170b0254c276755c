package fonts

import (
	"errors"
	"fmt"
)

var (
	ErrGlyphTooWide   = errors.New("fonts: glyph wider than 32 px")
	ErrGlyphTooTall   = errors.New("fonts: glyph extends below max height")
	ErrRuneOrder      = errors.New("fonts: runes must be added in ascending order")
	ErrNoReplacement  = errors.New("fonts: missing U+FFFD replacement glyph")
	ErrBadPatternArt  = errors.New("fonts: ragged pattern art")
	ErrOffsetOverflow = errors.New("fonts: record offset does not fit the index")
)

// Pattern is an unpacked glyph: one entry per row, each row right-justified
// in W bits with the leftmost pixel at bit W-1.
type Pattern struct {
	W       int
	YOffset int
	Rows    []uint32
}

// H returns the pattern height.
func (p Pattern) H() int { return len(p.Rows) }

// Header returns the record header for p.
func (p Pattern) Header() GlyphHeader {
	return GlyphHeader{W: p.W, H: len(p.Rows), YOffset: p.YOffset}
}

// Set reports whether the pixel at (col, row) is set.
func (p Pattern) Set(col, row int) bool {
	if col < 0 || col >= p.W || row < 0 || row >= len(p.Rows) {
		return false
	}
	return p.Rows[row]&(1<<uint(p.W-1-col)) != 0
}

// ParsePattern builds a pattern from rows of art where '#' is a set pixel and
// any other byte is clear. All rows must have the same length.
func ParsePattern(yOffset int, art ...string) (Pattern, error) {
	p := Pattern{YOffset: yOffset}
	if len(art) == 0 {
		return p, nil
	}
	p.W = len(art[0])
	if p.W > MaxGlyphWidth {
		return Pattern{}, fmt.Errorf("%w: %d", ErrGlyphTooWide, p.W)
	}
	for i, line := range art {
		if len(line) != p.W {
			return Pattern{}, fmt.Errorf("%w: row %d is %d px, want %d", ErrBadPatternArt, i, len(line), p.W)
		}
		var row uint32
		for j := 0; j < len(line); j++ {
			row <<= 1
			if line[j] == '#' {
				row |= 1
			}
		}
		p.Rows = append(p.Rows, row)
	}
	return p, nil
}

// Record packs p into a header word followed by its payload words.
func (p Pattern) Record() []uint32 {
	h := p.Header()
	out := make([]uint32, 1+h.PayloadWords())
	out[0] = h.Pack()
	pos := 0
	for _, row := range p.Rows {
		for col := p.W - 1; col >= 0; col-- {
			if row&(1<<uint(col)) != 0 {
				out[1+(pos>>5)] |= 0x8000_0000 >> uint(pos&0x1f)
			}
			pos++
		}
	}
	return out
}

// PatternAt unpacks the record at offset in f.
func PatternAt(f *Font, offset int) Pattern {
	h := f.Header(offset)
	p := Pattern{W: h.W, YOffset: h.YOffset, Rows: make([]uint32, h.H)}
	for row := 0; row < h.H; row++ {
		var bits uint32
		for col := 0; col < h.W; col++ {
			bits <<= 1
			if f.Pixel(offset, h, col, row) {
				bits |= 1
			}
		}
		p.Rows[row] = bits
	}
	return p
}

// Embolden widens p by one column and smears every row one pixel to the
// right. Patterns already 32 px wide keep their width.
func Embolden(p Pattern) Pattern {
	out := Pattern{W: p.W, YOffset: p.YOffset, Rows: make([]uint32, len(p.Rows))}
	grow := p.W < MaxGlyphWidth
	if grow {
		out.W++
	}
	for i, row := range p.Rows {
		if grow {
			out.Rows[i] = row<<1 | row
		} else {
			out.Rows[i] = row | row>>1
		}
	}
	return out
}

// Builder assembles a Font from glyph patterns added in ascending rune order.
// Consecutive runes share a block; a gap starts a new block.
type Builder struct {
	name      string
	maxHeight int

	data   []uint32
	blocks []Block
	last   rune
	n      int
}

// NewBuilder returns an empty builder for a font whose glyphs fit in maxHeight.
func NewBuilder(name string, maxHeight int) *Builder {
	return &Builder{name: name, maxHeight: maxHeight}
}

// Add appends the glyph for r.
func (b *Builder) Add(r rune, p Pattern) error {
	if p.W > MaxGlyphWidth {
		return fmt.Errorf("%w: %U is %d px", ErrGlyphTooWide, r, p.W)
	}
	if p.YOffset+p.H() > b.maxHeight {
		return fmt.Errorf("%w: %U ends at %d, max %d", ErrGlyphTooTall, r, p.YOffset+p.H(), b.maxHeight)
	}
	return b.addRecord(r, p.Record())
}

func (b *Builder) addRecord(r rune, rec []uint32) error {
	if b.n > 0 && r <= b.last {
		return fmt.Errorf("%w: %U after %U", ErrRuneOrder, r, b.last)
	}
	off := len(b.data)
	if off > 0xffff {
		return ErrOffsetOverflow
	}
	if b.n == 0 || r != b.last+1 {
		b.blocks = append(b.blocks, Block{Lo: r, Hi: r})
	} else {
		b.blocks[len(b.blocks)-1].Hi = r
	}
	cur := &b.blocks[len(b.blocks)-1]
	cur.Index = append(cur.Index, uint16(off))
	b.data = append(b.data, rec...)
	b.last = r
	b.n++
	return nil
}

// Build returns the finished font. The builder must not be reused.
func (b *Builder) Build() (*Font, error) {
	f := &Font{
		Name:      b.name,
		MaxHeight: b.maxHeight,
		Data:      b.data,
		Blocks:    b.blocks,
	}
	for _, blk := range f.Blocks {
		if blk.contains(0xfffd) {
			f.Replacement = int(blk.Index[0xfffd-blk.Lo])
			return f, nil
		}
	}
	return nil, ErrNoReplacement
}
