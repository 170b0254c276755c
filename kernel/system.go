package kernel

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrUnknownEndpoint is returned when sending to an endpoint that does not
// exist.
var ErrUnknownEndpoint = errors.New("kernel: unknown endpoint")

// System routes messages between the event loop and the services around
// it, and holds the published frame.
type System struct {
	mbox   [numEndpoints]Mailbox
	frames FrameShare
	ticks  atomic.Uint64
}

// NewSystem creates a kernel instance.
func NewSystem() *System {
	return &System{}
}

// StartTick starts a 1ms ticker that increments the tick counter until ctx
// is done.
func (s *System) StartTick(ctx context.Context) {
	go func() {
		t := time.NewTicker(1 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.ticks.Add(1)
			}
		}
	}()
}

// TickTo advances the tick counter to seq if it is behind.
func (s *System) TickTo(seq uint64) {
	for {
		cur := s.ticks.Load()
		if seq <= cur || s.ticks.CompareAndSwap(cur, seq) {
			return
		}
	}
}

// Ticks returns the current tick count (1ms per tick).
func (s *System) Ticks() uint64 {
	return s.ticks.Load()
}

// Frames returns the published frame.
func (s *System) Frames() *FrameShare {
	return &s.frames
}

// Mailbox returns the queue for ep, or nil for an unknown endpoint.
func (s *System) Mailbox(ep Endpoint) *Mailbox {
	if ep >= numEndpoints {
		return nil
	}
	return &s.mbox[ep]
}

func newMessage(from, to Endpoint, kind uint8, payload []byte) Message {
	var msg Message
	msg.From = from
	msg.To = to
	msg.Kind = kind
	if len(payload) > 0 {
		if len(payload) > MaxMessageBytes {
			payload = payload[:MaxMessageBytes]
		}
		msg.Len = uint16(len(payload))
		copy(msg.Data[:], payload)
	}
	return msg
}

// Send copies the payload into a fixed-size message and enqueues it,
// blocking while the destination is full. Payloads longer than
// MaxMessageBytes are truncated.
func (s *System) Send(from, to Endpoint, kind uint8, payload []byte) {
	if to >= numEndpoints {
		return
	}
	s.mbox[to].Send(newMessage(from, to, kind, payload))
}

// TrySend is Send without blocking. It reports false if the destination is
// full or unknown.
func (s *System) TrySend(from, to Endpoint, kind uint8, payload []byte) bool {
	if to >= numEndpoints {
		return false
	}
	return s.mbox[to].TrySend(newMessage(from, to, kind, payload))
}

// SendContext is Send that gives up when ctx is done.
func (s *System) SendContext(ctx context.Context, from, to Endpoint, kind uint8, payload []byte) error {
	if to >= numEndpoints {
		return ErrUnknownEndpoint
	}
	return s.mbox[to].SendContext(ctx, newMessage(from, to, kind, payload))
}

// Recv blocks until a message is available for the endpoint.
func (s *System) Recv(to Endpoint) Message {
	return s.mbox[to].Recv()
}

// TryRecv dequeues a message for the endpoint if one is waiting.
func (s *System) TryRecv(to Endpoint) (Message, bool) {
	if to >= numEndpoints {
		return Message{}, false
	}
	return s.mbox[to].TryRecv()
}

// RecvContext blocks until a message is available for the endpoint or ctx
// is done.
func (s *System) RecvContext(ctx context.Context, to Endpoint) (Message, error) {
	return s.mbox[to].RecvContext(ctx)
}

// Log sends one line to EPLogger without blocking. The line is dropped if
// the logger is backed up.
func (s *System) Log(from Endpoint, line string) bool {
	return s.TrySend(from, EPLogger, MsgLog, []byte(line))
}
