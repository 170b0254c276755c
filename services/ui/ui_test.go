package ui

import (
	"encoding/binary"
	"strings"
	"testing"

	"lcdkit/gfx/blit"
	"lcdkit/hal"
	"lcdkit/kbd"
	"lcdkit/kernel"
)

type testFB struct {
	buf      blit.FrameBuffer
	presents int
}

func (f *testFB) Width() int                       { return blit.PxPerLine }
func (f *testFB) Height() int                      { return blit.Lines }
func (f *testFB) Update(src *blit.FrameBuffer)     { f.buf = *src }
func (f *testFB) Snapshot(dst *blit.FrameBuffer)   { *dst = f.buf }
func (f *testFB) Present() error                   { f.presents++; return nil }
func (f *testFB) Framebuffer() hal.Framebuffer     { return f }

type testKeyboard chan hal.KeyEvent

func (k testKeyboard) Events() <-chan hal.KeyEvent { return k }
func (k testKeyboard) Keyboard() hal.Keyboard      { return k }

type testClipboard struct{ text string }

func (c *testClipboard) ReadText() (string, error) { return c.text, nil }
func (c *testClipboard) WriteText(s string) error  { c.text = s; return nil }

func drainLog(sys *kernel.System) []string {
	var lines []string
	for {
		msg, ok := sys.TryRecv(kernel.EPLogger)
		if !ok {
			return lines
		}
		lines = append(lines, string(msg.Payload()))
	}
}

func TestStartPublishes(t *testing.T) {
	sys := kernel.NewSystem()
	fb := &testFB{}
	s := New(sys, fb, nil, nil)
	s.Start()
	if seq := sys.Frames().Seq(); seq != 1 {
		t.Fatalf("Seq() after Start = %d, want 1", seq)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", fb.presents)
	}
	var got blit.FrameBuffer
	sys.Frames().Read(&got)
	if got != fb.buf {
		t.Fatalf("published frame differs from the presented one")
	}
	if s.Step() {
		t.Fatalf("Step() with nothing queued = true")
	}
}

func TestScanCodes(t *testing.T) {
	sys := kernel.NewSystem()
	s := New(sys, nil, nil, nil)
	s.Start()

	sys.Send(kernel.EPServer, kernel.EPEventLoop, kernel.MsgLayout, []byte("qwerty"))
	sys.Send(kernel.EPServer, kernel.EPEventLoop, kernel.MsgKbdScanCode, []byte("P23p"))
	sys.Send(kernel.EPServer, kernel.EPEventLoop, kernel.MsgKbdScanCode, []byte("P23r"))
	for s.Step() {
	}
	if got := s.Context().Buffer(); got != "q" {
		t.Fatalf("Buffer() = %q, want q", got)
	}
	if seq := sys.Frames().Seq(); seq != 4 {
		t.Fatalf("Seq() = %d, want 4", seq)
	}

	sys.Send(kernel.EPServer, kernel.EPEventLoop, kernel.MsgKbdScanCode, []byte("P99p"))
	s.Step()
	if seq := sys.Frames().Seq(); seq != 4 {
		t.Fatalf("bad scancode published a frame: Seq() = %d", seq)
	}
	lines := drainLog(sys)
	if len(lines) != 4 || lines[0] != "Keyscan: P23p" || !strings.Contains(lines[3], "bad scancode") {
		t.Fatalf("log = %q", lines)
	}
}

func TestScriptRequestsGetFrameReady(t *testing.T) {
	sys := kernel.NewSystem()
	s := New(sys, nil, nil, nil)
	s.Start()

	sys.Send(kernel.EPScript, kernel.EPEventLoop, kernel.MsgStatus, []byte("radio"))
	s.Step()
	msg, ok := sys.TryRecv(kernel.EPScript)
	if !ok || msg.Kind != kernel.MsgFrameReady {
		t.Fatalf("script reply = %v kind %d", ok, msg.Kind)
	}
	if seq := binary.LittleEndian.Uint32(msg.Payload()); seq != 2 {
		t.Fatalf("MsgFrameReady seq = %d, want 2", seq)
	}

	// A request that draws nothing is still answered with the current frame.
	sys.Send(kernel.EPScript, kernel.EPEventLoop, kernel.MsgKey, []byte{0, 1})
	s.Step()
	msg, _ = sys.TryRecv(kernel.EPScript)
	if seq := binary.LittleEndian.Uint32(msg.Payload()); seq != 2 {
		t.Fatalf("MsgFrameReady seq = %d, want 2", seq)
	}

	sys.Send(kernel.EPScript, kernel.EPEventLoop, kernel.MsgType, []byte("a1"))
	s.Step()
	if got := s.Context().Buffer(); got != "a1" {
		t.Fatalf("Buffer() after MsgType = %q", got)
	}
}

func TestHostKeys(t *testing.T) {
	sys := kernel.NewSystem()
	fb := &testFB{}
	keys := make(testKeyboard, 8)
	clip := &testClipboard{text: "ok\r\n"}
	s := New(sys, fb, keys, clip)
	s.Start()

	key, _ := kbd.PinIndex("P23")
	keys <- hal.KeyEvent{Code: hal.KeyRune, Press: true, Rune: 'h'}
	keys <- hal.KeyEvent{Code: hal.KeyMatrix, Index: key, Press: true}
	keys <- hal.KeyEvent{Code: hal.KeyMatrix, Index: key, Press: false}
	keys <- hal.KeyEvent{Code: hal.KeyPaste, Press: true}
	keys <- hal.KeyEvent{Code: hal.KeyCopy, Press: true}
	for s.Step() {
	}

	// P23 is 'a' on the default azerty layout.
	if got := s.Context().Buffer(); got != "haok" {
		t.Fatalf("Buffer() = %q", got)
	}
	if clip.text != "haok" {
		t.Fatalf("clipboard = %q", clip.text)
	}
	var got blit.FrameBuffer
	sys.Frames().Read(&got)
	if got != fb.buf {
		t.Fatalf("display and published frame differ")
	}
}
