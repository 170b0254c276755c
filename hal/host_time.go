//go:build !tinygo

package hal

import "time"

// hostTime reports milliseconds elapsed since the first advance. Only the
// latest value is kept for the reader.
type hostTime struct {
	ch    chan uint64
	start time.Time
	now   func() time.Time
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// advance publishes the current millisecond count, replacing a value the
// reader has not taken yet.
func (t *hostTime) advance() uint64 {
	now := t.now()
	if t.start.IsZero() {
		t.start = now
	}
	ms := uint64(now.Sub(t.start)/time.Millisecond) + 1
	for {
		select {
		case t.ch <- ms:
			return ms
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}
