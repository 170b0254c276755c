package kernel

import (
	"context"
	"sync"

	"lcdkit/gfx/blit"
)

// FrameShare holds the most recently published frame for any number of
// readers. Only the event loop writes to it.
type FrameShare struct {
	mu      sync.Mutex
	seq     uint32
	buf     blit.FrameBuffer
	changed chan struct{}
}

// Publish copies fb in, bumps the sequence number and wakes waiting readers.
func (s *FrameShare) Publish(fb *blit.FrameBuffer) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf = *fb
	s.seq++
	if s.changed != nil {
		close(s.changed)
		s.changed = nil
	}
	return s.seq
}

// Read copies the current frame into dst and returns its sequence number.
// Sequence 0 means nothing has been published yet.
func (s *FrameShare) Read(dst *blit.FrameBuffer) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	*dst = s.buf
	return s.seq
}

// Seq returns the current sequence number.
func (s *FrameShare) Seq() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// Wait blocks until a frame newer than after is published or ctx is done,
// and returns the new sequence number.
func (s *FrameShare) Wait(ctx context.Context, after uint32) (uint32, error) {
	for {
		s.mu.Lock()
		if s.seq != after {
			seq := s.seq
			s.mu.Unlock()
			return seq, nil
		}
		if s.changed == nil {
			s.changed = make(chan struct{})
		}
		ch := s.changed
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return after, ctx.Err()
		case <-ch:
		}
	}
}
