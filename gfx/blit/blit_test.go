package blit

import (
	"image/color"
	"testing"

	"lcdkit/gfx/fonts"

	"tinygo.org/x/tinyfont"
)

func clearedFrameBuffer() *FrameBuffer {
	fb := new(FrameBuffer)
	ClearRegion(fb, Full())
	return fb
}

func TestClearRegionFull(t *testing.T) {
	fb := clearedFrameBuffer()
	for y := 0; y < Lines; y++ {
		line := fb.Line(y)
		for i := 0; i < WordsPerLine-1; i++ {
			if line[i] != 0xffff_ffff {
				t.Fatalf("line %d word %d = %#08x, want 0xffffffff", y, i, line[i])
			}
		}
		if line[WordsPerLine-1] != 0xffff_0000 {
			t.Fatalf("line %d last word = %#08x, want 0xffff0000", y, line[WordsPerLine-1])
		}
	}
}

func TestClearThenInvertIsAllInk(t *testing.T) {
	fb := new(FrameBuffer)
	Stripes(fb)
	ClearRegion(fb, Full())
	InvertRegion(fb, Full())
	for i, w := range fb {
		if w != 0 {
			t.Fatalf("word %d = %#08x, want 0", i, w)
		}
	}
}

func TestInvertRegionStraddlesWords(t *testing.T) {
	fb := clearedFrameBuffer()
	InvertRegion(fb, ClipRegion{X0: 30, X1: 36, Y0: 5, Y1: 6})

	line := fb.Line(5)
	if line[0] != 0xffff_fffc {
		t.Fatalf("word 0 = %#08x, want 0xfffffffc", line[0])
	}
	if line[1] != 0x0fff_ffff {
		t.Fatalf("word 1 = %#08x, want 0x0fffffff", line[1])
	}
	for x := 0; x < PxPerLine; x++ {
		want := x >= 30 && x < 36
		if got := fb.Ink(x, 5); got != want {
			t.Fatalf("Ink(%d, 5) = %v, want %v", x, got, want)
		}
	}
	for _, y := range []int{4, 6} {
		for x := 0; x < PxPerLine; x++ {
			if fb.Ink(x, y) {
				t.Fatalf("Ink(%d, %d) = true outside region", x, y)
			}
		}
	}
}

func TestInvertRegionWithinOneWord(t *testing.T) {
	fb := clearedFrameBuffer()
	InvertRegion(fb, ClipRegion{X0: 4, X1: 8, Y0: 0, Y1: 1})
	if got := fb[0]; got != 0xf0ff_ffff {
		t.Fatalf("word 0 = %#08x, want 0xf0ffffff", got)
	}
	if got := fb[1]; got != 0xffff_ffff {
		t.Fatalf("word 1 = %#08x, want 0xffffffff", got)
	}
}

func TestInvalidRegionIsNoop(t *testing.T) {
	regions := []ClipRegion{
		{X0: 0, X1: PxPerLine + 1, Y0: 0, Y1: 1},
		{X0: 0, X1: 10, Y0: 0, Y1: Lines + 1},
		{X0: -1, X1: 10, Y0: 0, Y1: 1},
		{X0: 10, X1: 10, Y0: 0, Y1: 1},
		{X0: 0, X1: 10, Y0: 5, Y1: 4},
	}
	for _, cr := range regions {
		fb := clearedFrameBuffer()
		want := *fb
		InvertRegion(fb, cr)
		ClearRegion(fb, cr)
		if got := XorChar(fb, cr, 'A', fonts.Regular); got != 0 {
			t.Fatalf("XorChar(%+v) = %d, want 0", cr, got)
		}
		if *fb != want {
			t.Fatalf("region %+v modified the frame buffer", cr)
		}
	}
}

func TestOutlineRegion(t *testing.T) {
	fb := clearedFrameBuffer()
	OutlineRegion(fb, YRegion{Y0: 10, Y1: 15})
	if *fb != *clearedFrameBuffer() {
		t.Fatalf("OutlineRegion() drew a region shorter than 6 lines")
	}

	OutlineRegion(fb, YRegion{Y0: 10, Y1: 20})
	for _, y := range []int{10, 11, 18, 19} {
		for x := 0; x < PxPerLine; x++ {
			if fb.Ink(x, y) {
				t.Fatalf("Ink(%d, %d) = true on a padding line", x, y)
			}
		}
	}
	for _, y := range []int{12, 17} {
		for x := 0; x < PxPerLine; x++ {
			want := x >= 2 && x < PxPerLine-2
			if got := fb.Ink(x, y); got != want {
				t.Fatalf("Ink(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	for y := 13; y < 17; y++ {
		for x := 0; x < PxPerLine; x++ {
			want := x == 2 || x == PxPerLine-3
			if got := fb.Ink(x, y); got != want {
				t.Fatalf("Ink(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestLineFillPattern(t *testing.T) {
	fb := clearedFrameBuffer()
	row := BlitRow{0: 0x1234_5678, 10: 0xabcd_0000}
	LineFillPattern(fb, 3, &row)
	line := fb.Line(3)
	for i := range row {
		if line[i] != row[i] {
			t.Fatalf("word %d = %#08x, want %#08x", i, line[i], row[i])
		}
	}
	if fb.Line(4)[0] != 0xffff_ffff {
		t.Fatalf("LineFillPattern() wrote past its line")
	}
}

func TestStripes(t *testing.T) {
	fb := new(FrameBuffer)
	Stripes(fb)
	if fb[0] != 0xffff_ff03 {
		t.Fatalf("line 0 word 0 = %#08x, want 0xffffff03", fb[0])
	}
	if fb[WordsPerLine-1] != 0xffff_0000 {
		t.Fatalf("line 0 last word = %#08x, want 0xffff0000", fb[WordsPerLine-1])
	}
	if fb[WordsPerLine] != 0xffff_ff81 {
		t.Fatalf("line 1 word 0 = %#08x, want 0xffffff81", fb[WordsPerLine])
	}
}

func TestXorCharTwiceRestores(t *testing.T) {
	fb := new(FrameBuffer)
	Stripes(fb)
	want := *fb
	for _, x0 := range []int{0, 13, 29, 30, 31, 100, 300} {
		cr := ClipRegion{X0: x0, X1: PxPerLine, Y0: 40, Y1: Lines}
		for _, f := range fonts.All() {
			a := XorChar(fb, cr, '@', f)
			b := XorChar(fb, cr, '@', f)
			if a == 0 || a != b {
				t.Fatalf("%s XorChar at x=%d returned %d then %d", f.Name, x0, a, b)
			}
			if *fb != want {
				t.Fatalf("%s double XorChar at x=%d left the buffer changed", f.Name, x0)
			}
		}
	}
}

func TestXorCharMatchesGlyphDraw(t *testing.T) {
	for _, f := range fonts.All() {
		for _, c := range []rune{'@', 'g', 'W', '|', 0xfffd} {
			for _, x0 := range []int{0, 29, 45} {
				got := clearedFrameBuffer()
				cr := ClipRegion{X0: x0, X1: PxPerLine, Y0: 10, Y1: Lines}
				XorChar(got, cr, c, f)

				want := clearedFrameBuffer()
				d := NewDisplayer(want, nil)
				f.GetGlyph(c).Draw(d, int16(x0), int16(10+f.MaxHeight), color.RGBA{A: 0xff})

				if *got != *want {
					t.Fatalf("%s %U at x=%d differs from reference", f.Name, c, x0)
				}
			}
		}
	}
}

func TestXorCharAdvanceAndRightEdge(t *testing.T) {
	fb := clearedFrameBuffer()
	// Regular '@' is 16 px wide.
	cr := ClipRegion{X0: PxPerLine - 17, X1: PxPerLine, Y0: 0, Y1: Lines}
	if got := XorChar(fb, cr, '@', fonts.Regular); got != 19 {
		t.Fatalf("XorChar() at right edge = %d, want 19", got)
	}

	fb = clearedFrameBuffer()
	cr.X0 = PxPerLine - 16
	if got := XorChar(fb, cr, '@', fonts.Regular); got != 0 {
		t.Fatalf("XorChar() past right edge = %d, want 0", got)
	}
	if *fb != *clearedFrameBuffer() {
		t.Fatalf("rejected XorChar() modified the frame buffer")
	}
}

func TestXorCharClipsRows(t *testing.T) {
	// Regular '@' starts 8 rows into the line box; Y1 leaves room for 2.
	fb := clearedFrameBuffer()
	cr := ClipRegion{X0: 0, X1: PxPerLine, Y0: 100, Y1: 110}
	if got := XorChar(fb, cr, '@', fonts.Regular); got != 19 {
		t.Fatalf("XorChar() = %d, want 19", got)
	}
	full := clearedFrameBuffer()
	XorChar(full, ClipRegion{X0: 0, X1: PxPerLine, Y0: 100, Y1: Lines}, '@', fonts.Regular)
	for y := 100; y < 130; y++ {
		for x := 0; x < 20; x++ {
			want := y < 110 && full.Ink(x, y)
			if got := fb.Ink(x, y); got != want {
				t.Fatalf("Ink(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	fb = clearedFrameBuffer()
	cr.Y1 = 105
	if got := XorChar(fb, cr, '@', fonts.Regular); got != 19 {
		t.Fatalf("XorChar() fully clipped = %d, want 19", got)
	}
	if *fb != *clearedFrameBuffer() {
		t.Fatalf("fully clipped XorChar() drew rows")
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("", fonts.Regular); got != 0 {
		t.Fatalf("StringWidth(\"\") = %d, want 0", got)
	}
	if got := StringWidth("@", fonts.Regular); got != 18 {
		t.Fatalf("StringWidth(@) = %d, want 18", got)
	}
	if got := StringWidth("@@", fonts.Regular); got != 37 {
		t.Fatalf("StringWidth(@@) = %d, want 37", got)
	}
}

func TestStringLeftAdvance(t *testing.T) {
	fb := clearedFrameBuffer()
	s := "Hello, world!"
	got := StringRegularLeft(fb, ClipRegion{X0: 4, X1: PxPerLine, Y0: 0, Y1: Lines}, s)
	if want := StringWidth(s, fonts.Regular) + 1; got != want {
		t.Fatalf("StringRegularLeft() = %d, want %d", got, want)
	}
	_, outbox := tinyfont.LineWidth(fonts.Regular, s)
	if int(outbox) != got {
		t.Fatalf("tinyfont.LineWidth() outbox = %d, want %d", outbox, got)
	}
}

func TestStringCenter(t *testing.T) {
	s := "home"
	w := StringWidth(s, fonts.Bold)
	cr := ClipRegion{X0: 0, X1: PxPerLine, Y0: 0, Y1: Lines}

	got := clearedFrameBuffer()
	StringCenter(got, cr, s, fonts.Bold)
	want := clearedFrameBuffer()
	StringBoldLeft(want, ClipRegion{X0: PxPerLine/2 - w/2, X1: PxPerLine, Y0: 0, Y1: Lines}, s)
	if *got != *want {
		t.Fatalf("StringCenter() differs from StringBoldLeft() at the centered origin")
	}

	// Too wide for the region: left aligned.
	narrow := ClipRegion{X0: 50, X1: 60, Y0: 0, Y1: Lines}
	got = clearedFrameBuffer()
	StringCenter(got, narrow, s, fonts.Bold)
	want = clearedFrameBuffer()
	StringBoldLeft(want, narrow, s)
	if *got != *want {
		t.Fatalf("StringCenter() of a wide string is not left aligned")
	}
}

func TestDisplayer(t *testing.T) {
	fb := clearedFrameBuffer()
	presented := 0
	d := NewDisplayer(fb, func() error { presented++; return nil })

	if x, y := d.Size(); x != PxPerLine || y != Lines {
		t.Fatalf("Size() = %d,%d", x, y)
	}
	d.SetPixel(33, 2, color.RGBA{A: 0xff})
	if !fb.Ink(33, 2) {
		t.Fatalf("SetPixel(black) did not ink")
	}
	d.SetPixel(33, 2, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	if fb.Ink(33, 2) {
		t.Fatalf("SetPixel(white) did not clear")
	}
	d.SetPixel(-1, 0, color.RGBA{})
	d.SetPixel(PxPerLine, 0, color.RGBA{})

	if err := d.FillRectangle(-5, 0, 10, 2, color.RGBA{A: 0xff}); err != nil {
		t.Fatalf("FillRectangle() err = %v", err)
	}
	for x := 0; x < 8; x++ {
		want := x < 5
		if got := fb.Ink(x, 1); got != want {
			t.Fatalf("Ink(%d, 1) = %v, want %v", x, got, want)
		}
	}
	if err := d.Display(); err != nil || presented != 1 {
		t.Fatalf("Display() err = %v presented = %d", err, presented)
	}
}

func TestImage(t *testing.T) {
	fb := clearedFrameBuffer()
	InvertRegion(fb, ClipRegion{X0: 1, X1: 2, Y0: 1, Y1: 2})
	img := fb.Image()
	if b := img.Bounds(); b.Dx() != PxPerLine || b.Dy() != Lines {
		t.Fatalf("Bounds() = %v", b)
	}
	if img.ColorIndexAt(1, 1) != 0 || img.ColorIndexAt(0, 0) != 1 {
		t.Fatalf("ColorIndexAt() does not follow ink")
	}
}
