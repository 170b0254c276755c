package fonts

import (
	"errors"
	"testing"
)

func TestGlyphOffsetAt(t *testing.T) {
	tests := []struct {
		font   *Font
		offset int
		header uint32
	}{
		{Regular, 182, 0x0010_1008},
		{Small, 143, 0x000e_1006},
		{Bold, 197, 0x0011_1008},
	}
	for _, tt := range tests {
		off := tt.font.GlyphOffset('@')
		if off != tt.offset {
			t.Fatalf("%s GlyphOffset('@') = %d, want %d", tt.font.Name, off, tt.offset)
		}
		if got := tt.font.Data[off]; got != tt.header {
			t.Fatalf("%s header('@') = %#08x, want %#08x", tt.font.Name, got, tt.header)
		}
	}
}

func TestUnpackHeader(t *testing.T) {
	h := UnpackHeader(0x0010_1008)
	if h.W != 16 || h.H != 16 || h.YOffset != 8 {
		t.Fatalf("UnpackHeader() = %+v, want {16 16 8}", h)
	}
	if got := h.Pack(); got != 0x0010_1008 {
		t.Fatalf("Pack() = %#08x, want 0x00101008", got)
	}
	if got := h.PayloadWords(); got != 8 {
		t.Fatalf("PayloadWords() = %d, want 8", got)
	}
	if got := (GlyphHeader{W: 11, H: 3}).PayloadWords(); got != 2 {
		t.Fatalf("PayloadWords(11x3) = %d, want 2", got)
	}
	if got := (GlyphHeader{}).PayloadWords(); got != 0 {
		t.Fatalf("PayloadWords(0x0) = %d, want 0", got)
	}
}

func TestGlyphRecordsWithinBounds(t *testing.T) {
	for _, f := range All() {
		for _, r := range f.Runes() {
			off := f.GlyphOffset(r)
			h := f.Header(off)
			if h.W > MaxGlyphWidth {
				t.Fatalf("%s %U width %d > %d", f.Name, r, h.W, MaxGlyphWidth)
			}
			if h.YOffset+h.H > f.MaxHeight {
				t.Fatalf("%s %U ends at row %d, max %d", f.Name, r, h.YOffset+h.H, f.MaxHeight)
			}
			if end := off + 1 + h.PayloadWords(); end > len(f.Data) {
				t.Fatalf("%s %U record ends at %d, data has %d words", f.Name, r, end, len(f.Data))
			}
		}
	}
}

func TestUncoveredRuneUsesReplacement(t *testing.T) {
	for _, f := range All() {
		if f.Covers(0x4e00) {
			t.Fatalf("%s Covers(U+4E00) = true, want false", f.Name)
		}
		if got, want := f.GlyphOffset(0x4e00), f.GlyphOffset(0xfffd); got != want {
			t.Fatalf("%s GlyphOffset(U+4E00) = %d, want replacement %d", f.Name, got, want)
		}
	}
}

func TestPuaSpritesOnlyInBold(t *testing.T) {
	for _, s := range []string{Battery05, Battery99, Radio3, RadioOff, ShiftArrow, BackspaceSymbol, EnterSymbol} {
		r := []rune(s)[0]
		if !Bold.Covers(r) {
			t.Fatalf("Bold.Covers(%U) = false, want true", r)
		}
		if Regular.Covers(r) || Small.Covers(r) {
			t.Fatalf("%U covered outside Bold", r)
		}
	}
}

func TestRecordRoundTrip(t *testing.T) {
	for _, r := range []rune{'@', 'g', 'W', 0xe9, 0x20ac, 0xfffd} {
		off := Regular.GlyphOffset(r)
		h := Regular.Header(off)
		rec := PatternAt(Regular, off).Record()
		want := Regular.Data[off : off+1+h.PayloadWords()]
		if len(rec) != len(want) {
			t.Fatalf("%U record len = %d, want %d", r, len(rec), len(want))
		}
		for i := range rec {
			if rec[i] != want[i] {
				t.Fatalf("%U record[%d] = %#08x, want %#08x", r, i, rec[i], want[i])
			}
		}
	}
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern(2,
		"#..",
		".#.",
		"..#",
	)
	if err != nil {
		t.Fatalf("ParsePattern() err = %v", err)
	}
	if p.W != 3 || p.H() != 3 || p.YOffset != 2 {
		t.Fatalf("ParsePattern() = %+v", p)
	}
	if p.Rows[0] != 0b100 || p.Rows[1] != 0b010 || p.Rows[2] != 0b001 {
		t.Fatalf("Rows = %b", p.Rows)
	}
	if !p.Set(0, 0) || p.Set(1, 0) || !p.Set(2, 2) {
		t.Fatalf("Set() does not match art")
	}
	// 9 pixels: 100 010 001 from the MSB.
	rec := p.Record()
	if rec[0] != 0x0003_0302 {
		t.Fatalf("header = %#08x, want 0x00030302", rec[0])
	}
	if rec[1] != 0x8880_0000 {
		t.Fatalf("payload = %#08x, want 0x88800000", rec[1])
	}

	if _, err := ParsePattern(0, "##", "#"); !errors.Is(err, ErrBadPatternArt) {
		t.Fatalf("ragged art err = %v, want ErrBadPatternArt", err)
	}
	wide := "#################################"
	if _, err := ParsePattern(0, wide); !errors.Is(err, ErrGlyphTooWide) {
		t.Fatalf("33 px art err = %v, want ErrGlyphTooWide", err)
	}
}

func TestEmbolden(t *testing.T) {
	p := Pattern{W: 4, Rows: []uint32{0b1001, 0b0100}}
	b := Embolden(p)
	if b.W != 5 {
		t.Fatalf("W = %d, want 5", b.W)
	}
	if b.Rows[0] != 0b11011 || b.Rows[1] != 0b01100 {
		t.Fatalf("Rows = %b, want [11011 1100]", b.Rows)
	}

	full := Pattern{W: 32, Rows: []uint32{0x8000_0001}}
	b = Embolden(full)
	if b.W != 32 || b.Rows[0] != 0xc000_0001 {
		t.Fatalf("32 px Embolden() = {W:%d Rows:%#x}", b.W, b.Rows)
	}
}

func TestBoldIsEmboldenedRegular(t *testing.T) {
	for _, r := range []rune{'A', '@', 'q', 0xfffd} {
		want := Embolden(PatternAt(Regular, Regular.GlyphOffset(r)))
		got := PatternAt(Bold, Bold.GlyphOffset(r))
		if got.W != want.W || got.YOffset != want.YOffset || got.H() != want.H() {
			t.Fatalf("%U bold header = %+v, want %+v", r, got.Header(), want.Header())
		}
		for i := range want.Rows {
			if got.Rows[i] != want.Rows[i] {
				t.Fatalf("%U row %d = %b, want %b", r, i, got.Rows[i], want.Rows[i])
			}
		}
	}
}

func TestBuilder(t *testing.T) {
	dot := Pattern{W: 1, Rows: []uint32{1}}
	b := NewBuilder("test", 4)
	for _, r := range []rune{'a', 'b', 'x', 0xfffd} {
		if err := b.Add(r, dot); err != nil {
			t.Fatalf("Add(%U) err = %v", r, err)
		}
	}
	f, err := b.Build()
	if err != nil {
		t.Fatalf("Build() err = %v", err)
	}
	if len(f.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(f.Blocks))
	}
	if f.GlyphOffset('b') != 2 || f.GlyphOffset('x') != 4 {
		t.Fatalf("offsets b=%d x=%d, want 2 4", f.GlyphOffset('b'), f.GlyphOffset('x'))
	}
	if f.GlyphOffset('c') != f.Replacement || f.Replacement != 6 {
		t.Fatalf("Replacement = %d, want 6", f.Replacement)
	}
}

func TestBuilderErrors(t *testing.T) {
	dot := Pattern{W: 1, Rows: []uint32{1}}

	b := NewBuilder("test", 4)
	if err := b.Add('b', dot); err != nil {
		t.Fatalf("Add() err = %v", err)
	}
	if err := b.Add('a', dot); !errors.Is(err, ErrRuneOrder) {
		t.Fatalf("descending Add() err = %v, want ErrRuneOrder", err)
	}
	if err := b.Add('c', Pattern{W: 33, Rows: []uint32{1}}); !errors.Is(err, ErrGlyphTooWide) {
		t.Fatalf("wide Add() err = %v, want ErrGlyphTooWide", err)
	}
	if err := b.Add('d', Pattern{W: 1, YOffset: 4, Rows: []uint32{1}}); !errors.Is(err, ErrGlyphTooTall) {
		t.Fatalf("tall Add() err = %v, want ErrGlyphTooTall", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrNoReplacement) {
		t.Fatalf("Build() err = %v, want ErrNoReplacement", err)
	}
}

func TestGlyphInfo(t *testing.T) {
	info := Regular.GetGlyph('@').Info()
	if info.Width != 16 || info.Height != 16 || info.XAdvance != 19 {
		t.Fatalf("Info() = %+v", info)
	}
	if info.YOffset != int8(8-regularMaxHeight) {
		t.Fatalf("YOffset = %d, want %d", info.YOffset, 8-regularMaxHeight)
	}
	if Small.GetYAdvance() != smallMaxHeight {
		t.Fatalf("GetYAdvance() = %d, want %d", Small.GetYAdvance(), smallMaxHeight)
	}
}
