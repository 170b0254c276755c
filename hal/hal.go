package hal

import (
	"errors"

	"lcdkit/gfx/blit"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Framebuffer is the 1 bpp panel: packed words plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	// Update copies src into the panel.
	Update(src *blit.FrameBuffer)
	// Snapshot copies the panel into dst.
	Snapshot(dst *blit.FrameBuffer)
	Present() error
}

// KeyCode identifies the kind of a key event.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	// KeyMatrix is a key of the on-screen keyboard; Index holds its key index.
	KeyMatrix
	// KeyRune is typed text that is not tied to a key position.
	KeyRune
	// KeyCopy copies the typed text to the host clipboard.
	KeyCopy
	// KeyPaste types the host clipboard text.
	KeyPaste
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Index int
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Clipboard exchanges text with the host.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; higher-level timers live in userland.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the simulator and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clipboard() Clipboard
	Time() Time
}
