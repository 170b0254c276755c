//go:build !tinygo

package hal

type hostKeyboard struct {
	ch chan KeyEvent

	// Key held by the mouse, released with the button.
	mouseKey  int
	mouseDown bool
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// emit queues ev, dropping it if the consumer is backed up.
func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}
