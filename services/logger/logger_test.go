package logger

import (
	"bytes"
	"testing"

	"lcdkit/hal"
	"lcdkit/kernel"
)

func TestStepWritesLines(t *testing.T) {
	var out bytes.Buffer
	sys := kernel.NewSystem()
	s := New(hal.NewLogger(&out), sys)

	if s.Step() {
		t.Fatalf("Step() on an empty queue = true")
	}
	sys.Log(kernel.EPServer, "one")
	sys.Send(kernel.EPServer, kernel.EPLogger, kernel.MsgRepaint, nil)
	sys.Log(kernel.EPEventLoop, "two")
	for s.Step() {
	}
	if got := out.String(); got != "one\ntwo\n" {
		t.Fatalf("log output = %q", got)
	}
}
