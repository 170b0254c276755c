package gui

import (
	"lcdkit/gfx/blit"
	"lcdkit/gfx/fonts"
	"lcdkit/kbd"
)

// Screen bounds.
const (
	ScreenW = blit.PxPerLine
	ScreenH = blit.Lines
)

// Keyboard geometry: six rows of 33 px keys plus a closing clear line.
const (
	KbdKeyH = 33
	KbdH    = KbdKeyH*6 + 1
	KbdY0   = ScreenH - KbdH
	KbdY1   = ScreenH
)

// The status bar is one line of bold text; the main content box fills the
// space between it and the keyboard.
var (
	StatusH  = fonts.Bold.MaxHeight
	StatusY0 = 0
	StatusY1 = StatusY0 + StatusH
	MainY0   = StatusY1
	MainY1   = KbdY0
)

// Key row textures. A set bit is background, so these draw dark keys on a
// light grid. The last word's low 16 bits lie past the panel edge.
var (
	fkeyRow = blit.BlitRow{
		0xe000_0000, 0x0000_0000, 0x0800_0000, 0x0000_0000, 0x03ff_ffff, 0xffff_ffff,
		0xffc0_0000, 0x0000_0000, 0x0010_0000, 0x0000_0000, 0x0007_0000,
	}
	alphanumericRow = blit.BlitRow{
		0xe000_0000, 0x1000_0000, 0x0800_0000, 0x0400_0000, 0x0200_0000, 0x0180_0000,
		0x0040_0000, 0x0020_0000, 0x0010_0000, 0x0008_0000, 0x0007_0000,
	}
	spacebarRow = blit.BlitRow{
		0xffff_ffff, 0xf000_0000, 0x0800_0000, 0x0400_0000, 0x0000_0000, 0x0000_0000,
		0x0000_0000, 0x0020_0000, 0x0010_0000, 0x000f_ffff, 0xffff_0000,
	}
)

// HomeScreen draws the status bar, the outlined content box and the
// on-screen keyboard.
func HomeScreen(fb *FrameBuf, ctx *Context) {
	buf := &fb.Buf

	// Status bar: title, battery, radio, clock
	cr := blit.ClipRegion{X0: 0, X1: ScreenW, Y0: StatusY0, Y1: StatusY1}
	blit.ClearRegion(buf, cr)
	cr.X0 = 4
	blit.StringBoldLeft(buf, cr, ctx.Title)
	cr.X0 = 33*6 - 6
	blit.StringBoldLeft(buf, cr, ctx.BatteryIcon())
	cr.X0 = 33*7 - 3
	blit.StringBoldLeft(buf, cr, ctx.RadioIcon())
	cr.X0 = 33*8 - 2
	blit.StringBoldLeft(buf, cr, ctx.Time)

	// Main content: the note in each face, then the typed text
	yr := blit.YRegion{Y0: MainY0, Y1: MainY1}
	blit.OutlineRegion(buf, yr)
	cr = blit.ClipRegion{X0: 5, X1: ScreenW, Y0: yr.Y0 + 5, Y1: MainY1}
	blit.StringBoldLeft(buf, cr, ctx.Note)
	cr.Y0 += fonts.Bold.MaxHeight
	blit.StringRegularLeft(buf, cr, ctx.Note)
	cr.Y0 += fonts.Regular.MaxHeight
	blit.StringSmallLeft(buf, cr, ctx.Note)
	cr.Y0 += fonts.Small.MaxHeight * 2
	blit.StringRegularLeft(buf, cr, ctx.Buffer())

	Keyboard(fb, &ctx.Kbd, blit.YRegion{Y0: KbdY0, Y1: KbdY1})
	fb.SetDirty()
}

// Keyboard fills yr with a blank keyboard and labels it for the current
// map. yr must be exactly KbdH lines.
func Keyboard(fb *FrameBuf, ks *kbd.State, yr blit.YRegion) {
	if yr.Y1-yr.Y0 != KbdH || yr.Y0 < 0 || yr.Y1 > blit.Lines {
		return
	}
	buf := &fb.Buf
	y := yr.Y0
	stampRow(buf, y, &fkeyRow)
	for i := 0; i < 4; i++ {
		y += KbdKeyH
		stampRow(buf, y, &alphanumericRow)
	}
	y += KbdKeyH
	stampRow(buf, y, &spacebarRow)
	blit.LineFillClear(buf, y+KbdKeyH)

	KeyboardKeyCaps(fb, ks, yr)
	fb.SetDirty()
}

// stampRow draws one key row: a clear separator line then the row texture.
func stampRow(buf *blit.FrameBuffer, y int, row *blit.BlitRow) {
	blit.LineFillClear(buf, y)
	for i := 1; i < KbdKeyH; i++ {
		blit.LineFillPattern(buf, y+i, row)
	}
}

// KeyboardKeyCaps XORs the label of every key onto a keyboard at yr.
// Characters use the regular face; the modifier and editing symbols only
// exist in bold.
func KeyboardKeyCaps(fb *FrameBuf, ks *kbd.State, yr blit.YRegion) {
	if yr.Y1-yr.Y0 != KbdH || yr.Y0 < 0 || yr.Y1 > blit.Lines {
		return
	}
	buf := &fb.Buf
	cr := blit.ClipRegion{X0: 0, X1: ScreenW, Y0: yr.Y0, Y1: yr.Y1}
	for i := range keyRegions {
		key, ok := keyRegions[i].region()
		if !ok {
			continue
		}
		res, _ := ks.Lookup(i)
		cr.Y0 = yr.Y0 + key.Y0
		if res.Kind == kbd.Char {
			w := blit.CharWidth(res.Char, fonts.Regular)
			cr.X0 = centerX(key, w)
			blit.XorChar(buf, cr, res.Char, fonts.Regular)
			continue
		}
		label, f := capLabel(res)
		if label == "" {
			continue
		}
		cr.X0 = centerX(key, blit.StringWidth(label, f))
		blit.StringLeft(buf, cr, label, f)
	}
}

func capLabel(r kbd.Result) (string, *fonts.Font) {
	switch r.Kind {
	case kbd.ModShift:
		return "shift", fonts.Regular
	case kbd.ModAltL, kbd.ModAltR:
		return fonts.ShiftArrow, fonts.Bold
	case kbd.Enter:
		return fonts.EnterSymbol, fonts.Bold
	case kbd.Bksp:
		return fonts.BackspaceSymbol, fonts.Bold
	default:
		return "", nil
	}
}

func centerX(key blit.ClipRegion, w int) int {
	x := key.X0 + ((key.X1 - key.X0) >> 1) - (w >> 1)
	if x < 0 {
		return 0
	}
	return x
}

// KeyboardInvertKey flips key i, minus its border, to show it pressed.
// Keys without an on-screen cap are ignored.
func KeyboardInvertKey(fb *FrameBuf, i int) {
	if i < 0 || i >= kbd.MapSize {
		return
	}
	key, ok := keyRegions[i].region()
	if !ok {
		return
	}
	blit.InvertRegion(&fb.Buf, blit.ClipRegion{
		X0: key.X0 + 3,
		X1: key.X1,
		Y0: KbdY0 + key.Y0,
		Y1: KbdY0 + key.Y1 - 3,
	})
	fb.SetDirty()
}

// keyPos places a key by column, row and width in keys, relative to the top
// left of the keyboard. A one pixel gutter separates columns 4 and 5.
type keyPos struct {
	col, row, width int
}

func (k keyPos) region() (blit.ClipRegion, bool) {
	if k.width == 0 {
		return blit.ClipRegion{}, false
	}
	x0 := 1 + k.col*KbdKeyH
	if k.col >= 5 {
		x0++
	}
	x1 := x0 + k.width*KbdKeyH
	if k.col < 5 && k.col+k.width > 5 {
		x1++
	}
	y0 := 2 + k.row*KbdKeyH
	return blit.ClipRegion{X0: x0, X1: x1, Y0: y0, Y1: y0 + KbdKeyH}, true
}

// Key cap positions by key index. The d-pad keys have no cap.
var keyRegions = [kbd.MapSize]keyPos{
	{},        // up
	{},        // left
	{},        // click
	{},        // right
	{0, 0, 2}, // F1
	{2, 0, 2}, // F2
	{},        // down
	{6, 0, 2}, // F3
	{8, 0, 2}, // F4
	{0, 1, 1}, // number row
	{1, 1, 1},
	{2, 1, 1},
	{3, 1, 1},
	{4, 1, 1},
	{5, 1, 1},
	{6, 1, 1},
	{7, 1, 1},
	{8, 1, 1},
	{9, 1, 1},
	{0, 2, 1}, // upper letter row
	{1, 2, 1},
	{2, 2, 1},
	{3, 2, 1},
	{4, 2, 1},
	{5, 2, 1},
	{6, 2, 1},
	{7, 2, 1},
	{8, 2, 1},
	{9, 2, 1},
	{0, 3, 1}, // home letter row
	{1, 3, 1},
	{2, 3, 1},
	{3, 3, 1},
	{4, 3, 1},
	{5, 3, 1},
	{6, 3, 1},
	{7, 3, 1},
	{8, 3, 1},
	{9, 3, 1},
	{0, 4, 1}, // lower letter row
	{1, 4, 1},
	{2, 4, 1},
	{3, 4, 1},
	{4, 4, 1},
	{5, 4, 1},
	{6, 4, 1},
	{7, 4, 1},
	{8, 4, 1},
	{9, 4, 1},
	{1, 5, 1}, // bottom row
	{2, 5, 1},
	{3, 5, 4}, // space
	{7, 5, 1},
	{8, 5, 1},
}

// KeyAt returns the index of the key whose cap covers screen point (x, y).
func KeyAt(x, y int) (int, bool) {
	if y < KbdY0 || y >= KbdY1 {
		return 0, false
	}
	ky := y - KbdY0
	for i := range keyRegions {
		r, ok := keyRegions[i].region()
		if ok && x >= r.X0 && x < r.X1 && ky >= r.Y0 && ky < r.Y1 {
			return i, true
		}
	}
	return 0, false
}
