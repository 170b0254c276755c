// Package kbd models the handheld's keyboard: which layout is printed on the
// keys, which modifier is latched, and what each key produces as a result.
package kbd

import (
	"errors"
	"fmt"
	"strings"
)

// Layout relates to the labels printed on the physical keys.
type Layout uint8

const (
	Azerty Layout = iota
	Qwerty
)

var ErrUnknownLayout = errors.New("kbd: unknown layout")

func (l Layout) String() string {
	switch l {
	case Azerty:
		return "azerty"
	case Qwerty:
		return "qwerty"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// ParseLayout accepts a layout name, ignoring case.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "azerty":
		return Azerty, nil
	case "qwerty":
		return Qwerty, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
	}
}

// ModKey is the latched modifier state. Modifiers are sticky: a modifier
// keystroke toggles them rather than needing to be held.
type ModKey uint8

const (
	Base ModKey = iota
	Shift
	AltL
	AltR
	AltRS
)

func (m ModKey) String() string {
	switch m {
	case Base:
		return "base"
	case Shift:
		return "shift"
	case AltL:
		return "altl"
	case AltR:
		return "altr"
	case AltRS:
		return "altrs"
	default:
		return fmt.Sprintf("ModKey(%d)", uint8(m))
	}
}

// Map identifies one lookup table. The values are stable and are passed to
// web clients so they can draw matching key labels.
type Map uint8

const (
	MapAzerty Map = iota
	MapAzertyS
	MapAzertyAltL
	MapAzertyAltR
	MapAzertyAltRS
	MapQwerty
	MapQwertyS
	MapQwertyAlt
)

// Kind is the class of a keystroke result.
type Kind uint8

const (
	Nop Kind = iota
	Up
	Left
	Click
	Right
	Down
	F1
	F2
	F3
	F4
	Char
	Bksp
	Enter
	ModAltL
	Symbol
	Emoji
	ModAltR
	ModShift
)

// Result is what a keystroke does: an event, or a character when Kind is Char.
type Result struct {
	Kind Kind
	Char rune
}

// C returns a character result.
func C(r rune) Result { return Result{Kind: Char, Char: r} }

// IsModifier reports whether r changes the modifier state.
func (r Result) IsModifier() bool {
	return r.Kind == ModAltL || r.Kind == ModAltR || r.Kind == ModShift
}

func (r Result) String() string {
	switch r.Kind {
	case Char:
		return fmt.Sprintf("C(%q)", r.Char)
	case Nop:
		return "Nop"
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Click:
		return "Click"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case F1, F2, F3, F4:
		return fmt.Sprintf("F%d", r.Kind-F1+1)
	case Bksp:
		return "Bksp"
	case Enter:
		return "Enter"
	case ModAltL:
		return "AltL"
	case Symbol:
		return "Symbol"
	case Emoji:
		return "Emoji"
	case ModAltR:
		return "AltR"
	case ModShift:
		return "Shift"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(r.Kind))
	}
}

// State is the caller-owned keyboard configuration.
type State struct {
	Layout Layout
	ModKey ModKey
}

// CurMap returns the table selected by the layout and modifier.
func (s *State) CurMap() Map {
	if s.Layout == Qwerty {
		switch s.ModKey {
		case Base:
			return MapQwerty
		case Shift:
			return MapQwertyS
		default:
			return MapQwertyAlt
		}
	}
	switch s.ModKey {
	case Shift:
		return MapAzertyS
	case AltL:
		return MapAzertyAltL
	case AltR:
		return MapAzertyAltR
	case AltRS:
		return MapAzertyAltRS
	default:
		return MapAzerty
	}
}

// Lookup returns the result of key index i in the current map. ok is false
// for indexes outside the table.
func (s *State) Lookup(i int) (r Result, ok bool) {
	if i < 0 || i >= MapSize {
		return Result{}, false
	}
	return lut(s.CurMap())[i], true
}

// SetLayout switches the layout. The modifier is kept.
func (s *State) SetLayout(l Layout) { s.Layout = l }

// SetModKey forces the modifier state.
func (s *State) SetModKey(m ModKey) { s.ModKey = m }

// ModKeyDown applies a modifier keystroke. Azerty has distinct maps for AltL,
// AltR and AltR+Shift; qwerty has a single alt map, so either alt key turns
// alt off again.
func (s *State) ModKeyDown(r Result) {
	if s.Layout == Qwerty {
		switch r.Kind {
		case ModAltL:
			if s.ModKey == Base || s.ModKey == Shift {
				s.ModKey = AltL
			} else {
				s.ModKey = Base
			}
		case ModAltR:
			if s.ModKey == Base || s.ModKey == Shift {
				s.ModKey = AltR
			} else {
				s.ModKey = Base
			}
		case ModShift:
			switch s.ModKey {
			case Base:
				s.ModKey = Shift
			case Shift:
				s.ModKey = Base
			}
		}
		return
	}

	switch r.Kind {
	case ModAltL:
		if s.ModKey == AltL {
			s.ModKey = Base
		} else {
			s.ModKey = AltL
		}
	case ModAltR:
		switch s.ModKey {
		case Shift:
			s.ModKey = AltRS
		case AltR:
			s.ModKey = Base
		case AltRS:
			s.ModKey = Shift
		default:
			s.ModKey = AltR
		}
	case ModShift:
		switch s.ModKey {
		case Base:
			s.ModKey = Shift
		case Shift:
			s.ModKey = Base
		case AltR:
			s.ModKey = AltRS
		case AltRS:
			s.ModKey = AltR
		}
	}
}

// Find returns the first key index whose result in the current map is r.
func (s *State) Find(r Result) (int, bool) {
	t := lut(s.CurMap())
	for i := range t {
		if t[i] == r {
			return i, true
		}
	}
	return 0, false
}
