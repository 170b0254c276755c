package script

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lcdkit/kbd"
	"lcdkit/kernel"
	"lcdkit/services/ui"
)

// startLoop runs an event loop until the returned stop func is called.
func startLoop(t *testing.T, sys *kernel.System) (*ui.Service, func()) {
	t.Helper()
	s := ui.New(sys, nil, nil, nil)
	s.Start()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ctx.Err() == nil {
			if !s.Step() {
				time.Sleep(100 * time.Microsecond)
			}
		}
	}()
	return s, func() {
		cancel()
		<-done
	}
}

func TestRunDrivesEventLoop(t *testing.T) {
	sys := kernel.NewSystem()
	loop, stop := startLoop(t, sys)

	src := `
layout("qwerty")
type("Hi")
tap("P23")
tap(30)
local before = frame()
radio()
assert(frame() > before, "radio did not publish")
assert(ink(2, 100), "content box border missing")
log("done")
`
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := New(sys).Run(ctx, "test", src)
	stop()
	if err != nil {
		t.Fatalf("Run() err = %v", err)
	}
	c := loop.Context()
	if got := c.Buffer(); got != "Hiqs" {
		t.Fatalf("Buffer() = %q, want Hiqs", got)
	}
	if c.Kbd.Layout != kbd.Qwerty {
		t.Fatalf("Layout = %v, want qwerty", c.Kbd.Layout)
	}

	found := false
	for {
		msg, ok := sys.TryRecv(kernel.EPLogger)
		if !ok {
			break
		}
		if msg.From == kernel.EPScript && string(msg.Payload()) == "done" {
			found = true
		}
	}
	if !found {
		t.Fatalf("log(\"done\") did not reach the logger")
	}
}

func TestRunErrors(t *testing.T) {
	sys := kernel.NewSystem()
	_, stop := startLoop(t, sys)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tests := map[string]string{
		`tap("P99")`:       "unknown key",
		`keydown(99)`:      "out of range",
		`layout("dvorak")`: "unknown layout",
		`error("boom")`:    "boom",
		`tap(`:             "script test",
	}
	for src, want := range tests {
		err := New(sys).Run(ctx, "test", src)
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("Run(%q) err = %v, want it to mention %q", src, err, want)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	sys := kernel.NewSystem()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// No event loop is running: the request must give up with the context.
	if err := New(sys).Run(ctx, "test", `repaint()`); err == nil {
		t.Fatalf("Run() on a canceled context err = nil")
	}
}

func TestRunFile(t *testing.T) {
	sys := kernel.NewSystem()
	loop, stop := startLoop(t, sys)

	path := filepath.Join(t.TempDir(), "demo.lua")
	if err := os.WriteFile(path, []byte("demo(6)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := New(sys).RunFile(context.Background(), path)
	stop()
	if err != nil {
		t.Fatalf("RunFile() err = %v", err)
	}
	if f := loop.Context().DemoFrame; f != 6 {
		t.Fatalf("DemoFrame = %d, want 6", f)
	}
	if err := New(sys).RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Fatalf("RunFile(missing) err = nil")
	}
}
