//go:build !tinygo

package hal

import (
	"sync"

	"lcdkit/gfx/blit"
)

type hostFramebuffer struct {
	mu  sync.Mutex
	buf blit.FrameBuffer
	seq uint64

	// onPresent, when set, receives each presented frame.
	onPresent func(fb *blit.FrameBuffer) error
}

func newHostFramebuffer() *hostFramebuffer {
	f := &hostFramebuffer{}
	blit.ClearRegion(&f.buf, blit.Full())
	return f
}

func (f *hostFramebuffer) Width() int  { return blit.PxPerLine }
func (f *hostFramebuffer) Height() int { return blit.Lines }

func (f *hostFramebuffer) Update(src *blit.FrameBuffer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buf = *src
}

func (f *hostFramebuffer) Snapshot(dst *blit.FrameBuffer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*dst = f.buf
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.seq++
	hook := f.onPresent
	var frame blit.FrameBuffer
	if hook != nil {
		frame = f.buf
	}
	f.mu.Unlock()
	if hook == nil {
		return nil
	}
	return hook(&frame)
}

// presented returns the number of Present calls so far.
func (f *hostFramebuffer) presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seq
}
