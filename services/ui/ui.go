package ui

import (
	"encoding/binary"
	"fmt"
	"strings"

	"lcdkit/gui"
	"lcdkit/hal"
	"lcdkit/kbd"
	"lcdkit/kernel"
)

// Service is the event loop. It owns the GUI context and frame buffer,
// applies messages from EPEventLoop and host key events, and publishes
// every changed frame.
type Service struct {
	sys    *kernel.System
	disp   hal.Display
	in     hal.Input
	clip   hal.Clipboard
	fb     hal.Framebuffer
	events <-chan hal.KeyEvent

	frame gui.FrameBuf
	ctx   *gui.Context
}

// New creates the event loop. disp, in and clip may be nil.
func New(sys *kernel.System, disp hal.Display, in hal.Input, clip hal.Clipboard) *Service {
	return &Service{sys: sys, disp: disp, in: in, clip: clip, ctx: gui.NewContext()}
}

// Context returns the GUI state. It must only be used from the goroutine
// that calls Step.
func (s *Service) Context() *gui.Context { return s.ctx }

// Start draws and publishes the first frame.
func (s *Service) Start() {
	if s.disp != nil {
		s.fb = s.disp.Framebuffer()
	}
	if s.in != nil {
		if kb := s.in.Keyboard(); kb != nil {
			s.events = kb.Events()
		}
	}
	gui.Repaint(&s.frame, s.ctx)
	s.flush()
}

// Step handles at most one mailbox message and one host key event. It
// reports whether there was anything to do.
func (s *Service) Step() bool {
	did := false
	if msg, ok := s.sys.TryRecv(kernel.EPEventLoop); ok {
		s.Handle(msg)
		did = true
	}
	select {
	case ev := <-s.events:
		s.HandleKey(ev)
		did = true
	default:
	}
	return did
}

// Handle applies one message and publishes the frame if it changed.
// Requests from the script endpoint are answered with MsgFrameReady.
func (s *Service) Handle(msg kernel.Message) {
	p := msg.Payload()
	switch msg.Kind {
	case kernel.MsgKbdScanCode:
		s.log("Keyscan: " + string(p))
		i, press, err := kbd.ParseScanCode(string(p))
		if err != nil {
			s.log(fmt.Sprintf("ui: %v: %q", err, p))
			break
		}
		s.key(i, press)
	case kernel.MsgKey:
		if len(p) == 2 {
			s.key(int(p[0]), p[1] != 0)
		}
	case kernel.MsgRepaint:
		gui.Repaint(&s.frame, s.ctx)
	case kernel.MsgLayout:
		l, err := kbd.ParseLayout(string(p))
		if err != nil {
			s.log(fmt.Sprintf("ui: %v", err))
			break
		}
		gui.SetLayout(&s.frame, s.ctx, l)
	case kernel.MsgDemoTick:
		gui.DemoTick(&s.frame, s.ctx)
	case kernel.MsgStatus:
		switch string(p) {
		case "battery":
			s.ctx.CycleBattery()
		case "radio":
			s.ctx.CycleRadio()
		default:
			s.log(fmt.Sprintf("ui: unknown status %q", p))
		}
		gui.Repaint(&s.frame, s.ctx)
	case kernel.MsgLog:
		s.sys.TrySend(msg.From, kernel.EPLogger, kernel.MsgLog, p)
	case kernel.MsgType:
		for _, r := range string(p) {
			if !gui.TypeRune(&s.frame, s.ctx, r) {
				s.log(fmt.Sprintf("ui: no key types %q", r))
			}
		}
	default:
		s.log(fmt.Sprintf("ui: unexpected message kind %d from %v", msg.Kind, msg.From))
	}

	seq := s.flush()
	if msg.From == kernel.EPScript {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], seq)
		s.sys.Send(kernel.EPEventLoop, kernel.EPScript, kernel.MsgFrameReady, b[:])
	}
}

// HandleKey applies a host key event.
func (s *Service) HandleKey(ev hal.KeyEvent) {
	switch ev.Code {
	case hal.KeyMatrix:
		s.key(ev.Index, ev.Press)
	case hal.KeyRune:
		if !gui.TypeRune(&s.frame, s.ctx, ev.Rune) {
			s.log(fmt.Sprintf("ui: no key types %q", ev.Rune))
		}
	case hal.KeyCopy:
		if s.clip == nil {
			break
		}
		if err := s.clip.WriteText(strings.TrimRight(s.ctx.Buffer(), " ")); err != nil {
			s.log(fmt.Sprintf("ui: copy: %v", err))
		}
	case hal.KeyPaste:
		if s.clip == nil {
			break
		}
		text, err := s.clip.ReadText()
		if err != nil {
			s.log(fmt.Sprintf("ui: paste: %v", err))
			break
		}
		for _, r := range text {
			if r == '\r' {
				continue
			}
			gui.TypeRune(&s.frame, s.ctx, r)
		}
	}
	s.flush()
}

func (s *Service) key(i int, press bool) {
	if press {
		gui.KeyDown(&s.frame, s.ctx, i)
	} else {
		gui.KeyUp(&s.frame, s.ctx, i)
	}
}

// flush publishes the frame if it changed and returns the current sequence.
func (s *Service) flush() uint32 {
	frames := s.sys.Frames()
	if !s.frame.Dirty() {
		return frames.Seq()
	}
	seq := frames.Publish(&s.frame.Buf)
	s.frame.ClearDirty()
	if s.fb != nil {
		s.fb.Update(&s.frame.Buf)
		if err := s.fb.Present(); err != nil {
			s.log(fmt.Sprintf("ui: present: %v", err))
		}
	}
	return seq
}

func (s *Service) log(line string) {
	s.sys.Log(kernel.EPEventLoop, line)
}
