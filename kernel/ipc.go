package kernel

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

// MaxMessageBytes is the maximum payload size for IPC messages.
const MaxMessageBytes = 256

// Message is a fixed-size message envelope.
type Message struct {
	From Endpoint
	To   Endpoint
	Kind uint8
	Len  uint16
	Data [MaxMessageBytes]byte
}

// Payload returns the used part of Data.
func (m *Message) Payload() []byte { return m.Data[:m.Len] }

const (
	// MsgLog carries one log line for the logger.
	MsgLog uint8 = iota + 1
	// MsgKbdScanCode carries a web scancode such as "P13p" or "PCr".
	MsgKbdScanCode
	// MsgKey carries a key index and a press flag: [index, 1|0].
	MsgKey
	// MsgRepaint asks the event loop to redraw and publish the frame.
	MsgRepaint
	// MsgLayout carries a layout name for the on-screen keyboard.
	MsgLayout
	// MsgDemoTick advances the demo animation by one frame.
	MsgDemoTick
	// MsgStatus cycles the status icons: "battery" or "radio".
	MsgStatus
	// MsgFrameReady tells a sender that its request has been drawn and
	// published. The payload is the frame sequence number, little endian.
	MsgFrameReady
	// MsgType carries UTF-8 text to type on the on-screen keyboard.
	MsgType
)

const mailboxSlots = 8

type slot struct {
	// seq is the send position plus one once the message is written.
	seq atomic.Uint32
	msg Message
}

// Mailbox is a fixed-size multi-producer, single-consumer queue with no
// allocations. The zero value is empty and ready to use.
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [mailboxSlots]slot
}

// TrySend attempts to enqueue a message, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(msg Message) bool {
	for {
		head := mb.head.Load()
		tail := mb.tail.Load()
		if head-tail >= mailboxSlots {
			return false
		}
		// Reserve a slot; retry if another producer got there first.
		if !mb.head.CompareAndSwap(head, head+1) {
			continue
		}
		s := &mb.slots[head%mailboxSlots]
		s.msg = msg
		s.seq.Store(head + 1)
		return true
	}
}

// Send enqueues a message, blocking until it succeeds.
func (mb *Mailbox) Send(msg Message) {
	for !mb.TrySend(msg) {
		runtime.Gosched()
	}
}

// TryRecv attempts to dequeue one message, returning false if empty. A slot
// that has been reserved but not yet written reads as empty.
func (mb *Mailbox) TryRecv() (Message, bool) {
	tail := mb.tail.Load()
	s := &mb.slots[tail%mailboxSlots]
	if s.seq.Load() != tail+1 {
		return Message{}, false
	}
	msg := s.msg
	mb.tail.Store(tail + 1)
	return msg, true
}

// Recv blocks until one message is available.
func (mb *Mailbox) Recv() Message {
	for {
		msg, ok := mb.TryRecv()
		if ok {
			return msg
		}
		runtime.Gosched()
	}
}

// idlePoll is how long RecvContext sleeps between polls of an empty mailbox.
const idlePoll = time.Millisecond

// RecvContext blocks until a message is available or ctx is done.
func (mb *Mailbox) RecvContext(ctx context.Context) (Message, error) {
	if msg, ok := mb.TryRecv(); ok {
		return msg, nil
	}
	t := time.NewTicker(idlePoll)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return Message{}, ctx.Err()
		case <-t.C:
			if msg, ok := mb.TryRecv(); ok {
				return msg, nil
			}
		}
	}
}

// SendContext enqueues a message, waiting while the mailbox is full until
// ctx is done.
func (mb *Mailbox) SendContext(ctx context.Context, msg Message) error {
	if mb.TrySend(msg) {
		return nil
	}
	t := time.NewTicker(idlePoll)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if mb.TrySend(msg) {
				return nil
			}
		}
	}
}

// Len reports the number of queued messages.
func (mb *Mailbox) Len() int {
	return int(mb.head.Load() - mb.tail.Load())
}
