// Package gui composes the handheld's home screen from blitter calls and
// applies keyboard events to it. All state lives in a caller-owned Context
// and FrameBuf; the package keeps no globals.
package gui

import (
	"unicode/utf8"

	"lcdkit/gfx/blit"
	"lcdkit/gfx/fonts"
	"lcdkit/kbd"
)

// Battery is a charge level shown in the status bar.
type Battery uint8

const (
	Battery05 Battery = iota
	Battery25
	Battery50
	Battery75
	Battery99
)

// Radio is a signal strength shown in the status bar.
type Radio uint8

const (
	Radio3 Radio = iota
	Radio2
	Radio1
	Radio0
	RadioOff
)

// FrameBuf is the LCD frame buffer plus a flag telling the display layer
// that it changed since the last flush.
type FrameBuf struct {
	Buf   blit.FrameBuffer
	dirty bool
}

func (fb *FrameBuf) SetDirty()   { fb.dirty = true }
func (fb *FrameBuf) ClearDirty() { fb.dirty = false }
func (fb *FrameBuf) Dirty() bool { return fb.dirty }

// MaxChars is the capacity of the typed text buffer.
const MaxChars = 14

// Context holds the status bar data, home screen text, keyboard state and
// demo position.
type Context struct {
	Battery Battery
	Radio   Radio
	Title   string
	Time    string
	Note    string

	Kbd kbd.State

	DemoFrame int

	chars [MaxChars]rune
	n     int
}

// NewContext returns the power-on state.
func NewContext() *Context {
	return &Context{
		Battery: Battery75,
		Radio:   Radio3,
		Title:   "home",
		Time:    "12:34",
		Note:    "Hello, world!",
		Kbd:     kbd.State{Layout: kbd.Azerty, ModKey: kbd.Base},
	}
}

// CycleBattery steps to the next charge level, wrapping to empty.
func (c *Context) CycleBattery() {
	if c.Battery >= Battery99 {
		c.Battery = Battery05
		return
	}
	c.Battery++
}

// CycleRadio steps 3 -> off -> 0 -> 1 -> 2 -> 3.
func (c *Context) CycleRadio() {
	switch c.Radio {
	case Radio3:
		c.Radio = RadioOff
	case Radio2:
		c.Radio = Radio3
	case Radio1:
		c.Radio = Radio2
	case Radio0:
		c.Radio = Radio1
	default:
		c.Radio = Radio0
	}
}

// BatteryIcon returns the Private Use Area string for the charge level.
func (c *Context) BatteryIcon() string {
	switch c.Battery {
	case Battery05:
		return fonts.Battery05
	case Battery25:
		return fonts.Battery25
	case Battery50:
		return fonts.Battery50
	case Battery75:
		return fonts.Battery75
	default:
		return fonts.Battery99
	}
}

// RadioIcon returns the Private Use Area string for the signal strength.
func (c *Context) RadioIcon() string {
	switch c.Radio {
	case Radio3:
		return fonts.Radio3
	case Radio2:
		return fonts.Radio2
	case Radio1:
		return fonts.Radio1
	case Radio0:
		return fonts.Radio0
	default:
		return fonts.RadioOff
	}
}

// BufferKeystroke appends r to the typed text. When the buffer is full the
// oldest character is dropped.
func (c *Context) BufferKeystroke(r rune) {
	if c.n < MaxChars {
		c.chars[c.n] = r
		c.n++
		return
	}
	copy(c.chars[:], c.chars[1:])
	c.chars[MaxChars-1] = r
}

// Backspace removes the newest character, if any.
func (c *Context) Backspace() {
	if c.n > 0 {
		c.n--
	}
}

// Buffer returns the typed text. A buffer holding a value that is not a
// valid code point yields "".
func (c *Context) Buffer() string {
	var b []byte
	for _, r := range c.chars[:c.n] {
		if !utf8.ValidRune(r) {
			return ""
		}
		b = utf8.AppendRune(b, r)
	}
	return string(b)
}

// ClearBuffer empties the typed text.
func (c *Context) ClearBuffer() { c.n = 0 }
