//go:build !tinygo && cgo

package hal

import (
	"lcdkit/gui"
	"lcdkit/kbd"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeyPins wires host keys to scan matrix pins by physical position, the
// same way the browser simulator does.
var hostKeyPins = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "P2",
	ebiten.KeyArrowLeft:  "P5",
	ebiten.KeyEscape:     "PC",
	ebiten.KeyArrowRight: "P6",
	ebiten.KeyF1:         "P3",
	ebiten.KeyF2:         "P4",
	ebiten.KeyArrowDown:  "P9",
	ebiten.KeyF3:         "P7",
	ebiten.KeyF4:         "P8",
	ebiten.KeyDigit1:     "P13",
	ebiten.KeyDigit2:     "P14",
	ebiten.KeyDigit3:     "P15",
	ebiten.KeyDigit4:     "P16",
	ebiten.KeyDigit5:     "P17",
	ebiten.KeyDigit6:     "P18",
	ebiten.KeyDigit7:     "P19",
	ebiten.KeyDigit8:     "P20",
	ebiten.KeyDigit9:     "P21",
	ebiten.KeyDigit0:     "P22",
	ebiten.KeyQ:          "P23",
	ebiten.KeyW:          "P24",
	ebiten.KeyE:          "P25",
	ebiten.KeyR:          "P26",
	ebiten.KeyT:          "P27",
	ebiten.KeyY:          "P28",
	ebiten.KeyU:          "P29",
	ebiten.KeyI:          "P30",
	ebiten.KeyO:          "P31",
	ebiten.KeyP:          "P32",
	ebiten.KeyA:          "P33",
	ebiten.KeyS:          "P34",
	ebiten.KeyD:          "P35",
	ebiten.KeyF:          "P36",
	ebiten.KeyG:          "P37",
	ebiten.KeyH:          "P38",
	ebiten.KeyJ:          "P39",
	ebiten.KeyK:          "P40",
	ebiten.KeyL:          "P41",
	ebiten.KeyEnter:      "P42",
	ebiten.KeyShiftLeft:  "P43",
	ebiten.KeyZ:          "P44",
	ebiten.KeyX:          "P45",
	ebiten.KeyC:          "P46",
	ebiten.KeyV:          "P47",
	ebiten.KeyB:          "P48",
	ebiten.KeyN:          "P49",
	ebiten.KeyM:          "P50",
	ebiten.KeySlash:      "P51",
	ebiten.KeyShiftRight: "P52",
	ebiten.KeyAltLeft:    "P53",
	ebiten.KeyMetaLeft:   "P54",
	ebiten.KeySpace:      "P55",
	ebiten.KeyMetaRight:  "P56",
	ebiten.KeyAltRight:   "P57",
}

// poll turns this frame's host key and mouse transitions into events.
func (k *hostKeyboard) poll() {
	for key, pin := range hostKeyPins {
		i, ok := kbd.PinIndex(pin)
		if !ok {
			continue
		}
		if inpututil.IsKeyJustPressed(key) {
			k.emit(KeyEvent{Code: KeyMatrix, Index: i, Press: true})
		}
		if inpututil.IsKeyJustReleased(key) {
			k.emit(KeyEvent{Code: KeyMatrix, Index: i, Press: false})
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		k.emit(KeyEvent{Code: KeyCopy, Press: true})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF6) {
		k.emit(KeyEvent{Code: KeyPaste, Press: true})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// The cursor is reported in panel pixels, whatever the window size.
		x, y := ebiten.CursorPosition()
		if i, ok := gui.KeyAt(x, y); ok {
			k.mouseKey = i
			k.mouseDown = true
			k.emit(KeyEvent{Code: KeyMatrix, Index: i, Press: true})
		}
	}
	if k.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		k.mouseDown = false
		k.emit(KeyEvent{Code: KeyMatrix, Index: k.mouseKey, Press: false})
	}
}
