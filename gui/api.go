package gui

import "lcdkit/kbd"

// Repaint redraws the active view.
func Repaint(fb *FrameBuf, ctx *Context) {
	HomeScreen(fb, ctx)
}

// KeyDown applies a key press: characters are buffered, backspace drops the
// newest character and modifiers change the keyboard map. The key is then
// drawn pressed. Out of range indexes are ignored.
func KeyDown(fb *FrameBuf, ctx *Context, i int) kbd.Result {
	res, ok := ctx.Kbd.Lookup(i)
	if !ok {
		return kbd.Result{}
	}
	switch {
	case res.Kind == kbd.Char:
		ctx.BufferKeystroke(res.Char)
		Repaint(fb, ctx)
	case res.Kind == kbd.Bksp:
		ctx.Backspace()
		Repaint(fb, ctx)
	case res.IsModifier():
		ctx.Kbd.ModKeyDown(res)
		Repaint(fb, ctx)
	}
	KeyboardInvertKey(fb, i)
	return res
}

// KeyUp draws the key released. Paired with KeyDown on a key whose press did
// not repaint, it restores the keyboard pixels exactly.
func KeyUp(fb *FrameBuf, ctx *Context, i int) {
	if i < 0 || i >= kbd.MapSize {
		return
	}
	KeyboardInvertKey(fb, i)
}

// SetLayout switches the keyboard layout, clears any modifier and repaints.
func SetLayout(fb *FrameBuf, ctx *Context, l kbd.Layout) {
	ctx.Kbd.SetLayout(l)
	ctx.Kbd.SetModKey(kbd.Base)
	Repaint(fb, ctx)
}

// Modifier sequences tried, in order, to reach a map that types a rune.
var typeModSeqs = [][]kbd.Kind{
	nil,
	{kbd.ModShift},
	{kbd.ModAltL},
	{kbd.ModAltR},
	{kbd.ModAltR, kbd.ModShift},
	{kbd.ModAltL, kbd.ModShift},
}

// TypeRune taps the keys that produce r in the current layout, pressing
// modifiers first when needed, then restores the modifier state. '\n' taps
// enter and '\b' backspace. It reports false when no map has r.
func TypeRune(fb *FrameBuf, ctx *Context, r rune) bool {
	want := kbd.C(r)
	switch r {
	case '\n':
		want = kbd.Result{Kind: kbd.Enter}
	case '\b':
		want = kbd.Result{Kind: kbd.Bksp}
	}

	orig := ctx.Kbd
	for _, seq := range typeModSeqs {
		keys, ok := planKeys(orig, seq, want)
		if !ok {
			continue
		}
		for _, i := range keys {
			KeyDown(fb, ctx, i)
			KeyUp(fb, ctx, i)
		}
		if ctx.Kbd != orig {
			ctx.Kbd = orig
			Repaint(fb, ctx)
		}
		return true
	}
	return false
}

// planKeys returns the key indexes that press the modifiers in seq and then
// want, starting from ks.
func planKeys(ks kbd.State, seq []kbd.Kind, want kbd.Result) ([]int, bool) {
	keys := make([]int, 0, len(seq)+1)
	for _, k := range seq {
		mod := kbd.Result{Kind: k}
		i, ok := ks.Find(mod)
		if !ok {
			return nil, false
		}
		ks.ModKeyDown(mod)
		keys = append(keys, i)
	}
	i, ok := ks.Find(want)
	if !ok {
		return nil, false
	}
	return append(keys, i), true
}
