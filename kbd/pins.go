package kbd

import (
	"errors"
	"strings"
)

// Pins names the scan matrix pin of each key index, as sent by the web
// simulator in scancodes like "P13p". Comments are the base qwerty caps.
var Pins = [MapSize]string{
	"P2",  // up
	"P5",  // left
	"PC",  // click
	"P6",  // right
	"P3",  // F1
	"P4",  // F2 (shift)
	"P9",  // down
	"P7",  // F3
	"P8",  // F4
	"P13", // 1
	"P14", // 2
	"P15", // 3
	"P16", // 4
	"P17", // 5
	"P18", // 6
	"P19", // 7
	"P20", // 8
	"P21", // 9
	"P22", // 0
	"P23", // q
	"P24", // w
	"P25", // e
	"P26", // r
	"P27", // t
	"P28", // y
	"P29", // u
	"P30", // i
	"P31", // o
	"P32", // p
	"P33", // a
	"P34", // s
	"P35", // d
	"P36", // f
	"P37", // g
	"P38", // h
	"P39", // j
	"P40", // k
	"P41", // l
	"P42", // backspace
	"P43", // !
	"P44", // z
	"P45", // x
	"P46", // c
	"P47", // v
	"P48", // b
	"P49", // n
	"P50", // m
	"P51", // ?
	"P52", // enter
	"P53", // left alt
	"P54", // ,
	"P55", // space
	"P56", // .
	"P57", // right alt
}

var pinIndex = func() map[string]int {
	m := make(map[string]int, len(Pins))
	for i, p := range Pins {
		m[p] = i
	}
	return m
}()

// PinIndex returns the key index wired to pin, e.g. "P13" or "PC".
func PinIndex(pin string) (int, bool) {
	i, ok := pinIndex[pin]
	return i, ok
}

// ErrBadScanCode is returned for a scancode that does not name a key press
// or release.
var ErrBadScanCode = errors.New("kbd: bad scancode")

// ParseScanCode decodes a four character scancode: a pin name padded with
// '_' to three characters followed by 'p' for press or 'r' for release, as
// in "P13p", "P2_r" or "PC_p".
func ParseScanCode(sc string) (index int, press bool, err error) {
	if len(sc) != 4 {
		return 0, false, ErrBadScanCode
	}
	switch sc[3] {
	case 'p':
		press = true
	case 'r':
	default:
		return 0, false, ErrBadScanCode
	}
	i, ok := PinIndex(strings.TrimRight(sc[:3], "_"))
	if !ok {
		return 0, false, ErrBadScanCode
	}
	return i, press, nil
}
