// Package script drives the simulator from Lua. Every call that changes the
// screen is sent to the event loop, and returns once the resulting frame has
// been published.
//
// Functions available to scripts:
//
//	keydown(key)    press a key, by index or pin name ("P13")
//	keyup(key)      release a key
//	tap(key)        press and release a key
//	type(text)      tap the keys that type text in the current layout
//	layout(name)    switch to "azerty" or "qwerty"
//	battery()       cycle the battery icon
//	radio()         cycle the radio icon
//	demo([frames])  advance the demo animation, one frame by default
//	repaint()       redraw the screen
//	frame()         sequence number of the last published frame
//	ink(x, y)       whether the published pixel at x, y is ink
//	sleep(ms)       pause
//	log(s)          write a log line
package script

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"lcdkit/gfx/blit"
	"lcdkit/kbd"
	"lcdkit/kernel"

	lua "github.com/yuin/gopher-lua"
)

// Runner executes scripts against a running event loop.
type Runner struct {
	sys *kernel.System
}

func New(sys *kernel.System) *Runner {
	return &Runner{sys: sys}
}

// RunFile runs the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return r.Run(ctx, path, string(src))
}

// Run runs src. name is used in error messages.
func (r *Runner) Run(ctx context.Context, name, src string) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	L.SetContext(ctx)

	e := &env{sys: r.sys, ctx: ctx}
	for fname, fn := range map[string]lua.LGFunction{
		"keydown": e.keyDown,
		"keyup":   e.keyUp,
		"tap":     e.tap,
		"type":    e.typeText,
		"layout":  e.layout,
		"battery": e.status("battery"),
		"radio":   e.status("radio"),
		"demo":    e.demo,
		"repaint": e.repaint,
		"frame":   e.frame,
		"ink":     e.ink,
		"sleep":   e.sleep,
		"log":     e.log,
	} {
		L.SetGlobal(fname, L.NewFunction(fn))
	}

	fn, err := L.LoadString(src)
	if err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	return nil
}

// env is the state behind the functions of one script run.
type env struct {
	sys *kernel.System
	ctx context.Context
}

// request sends a message to the event loop and waits for the frame it
// produced. Errors are raised in L.
func (e *env) request(L *lua.LState, kind uint8, payload []byte) uint32 {
	if err := e.sys.SendContext(e.ctx, kernel.EPScript, kernel.EPEventLoop, kind, payload); err != nil {
		L.RaiseError("%v", err)
	}
	for {
		msg, err := e.sys.RecvContext(e.ctx, kernel.EPScript)
		if err != nil {
			L.RaiseError("%v", err)
		}
		if msg.Kind == kernel.MsgFrameReady && msg.Len == 4 {
			return binary.LittleEndian.Uint32(msg.Payload())
		}
	}
}

// keyArg reads a key index or pin name argument.
func keyArg(L *lua.LState, n int) int {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		i := int(v)
		if i < 0 || i >= kbd.MapSize {
			L.ArgError(n, fmt.Sprintf("key index %d out of range", i))
		}
		return i
	case lua.LString:
		i, ok := kbd.PinIndex(string(v))
		if !ok {
			L.ArgError(n, fmt.Sprintf("unknown key %q", string(v)))
		}
		return i
	default:
		L.ArgError(n, "key index or pin name expected")
		return 0
	}
}

func (e *env) key(L *lua.LState, press bool) uint32 {
	i := keyArg(L, 1)
	var p byte
	if press {
		p = 1
	}
	return e.request(L, kernel.MsgKey, []byte{byte(i), p})
}

func (e *env) keyDown(L *lua.LState) int {
	L.Push(lua.LNumber(e.key(L, true)))
	return 1
}

func (e *env) keyUp(L *lua.LState) int {
	L.Push(lua.LNumber(e.key(L, false)))
	return 1
}

func (e *env) tap(L *lua.LState) int {
	e.key(L, true)
	L.Push(lua.LNumber(e.key(L, false)))
	return 1
}

func (e *env) typeText(L *lua.LState) int {
	text := L.CheckString(1)
	seq := e.sys.Frames().Seq()
	// Split so each request fits in one message.
	for len(text) > 0 {
		n := min(len(text), kernel.MaxMessageBytes)
		for n < len(text) && n > 0 && !runeStart(text[n]) {
			n--
		}
		seq = e.request(L, kernel.MsgType, []byte(text[:n]))
		text = text[n:]
	}
	L.Push(lua.LNumber(seq))
	return 1
}

func runeStart(b byte) bool { return b&0xc0 != 0x80 }

func (e *env) layout(L *lua.LState) int {
	name := L.CheckString(1)
	if _, err := kbd.ParseLayout(name); err != nil {
		L.ArgError(1, err.Error())
	}
	L.Push(lua.LNumber(e.request(L, kernel.MsgLayout, []byte(name))))
	return 1
}

func (e *env) status(which string) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LNumber(e.request(L, kernel.MsgStatus, []byte(which))))
		return 1
	}
}

func (e *env) demo(L *lua.LState) int {
	n := L.OptInt(1, 1)
	seq := e.sys.Frames().Seq()
	for i := 0; i < n; i++ {
		seq = e.request(L, kernel.MsgDemoTick, nil)
	}
	L.Push(lua.LNumber(seq))
	return 1
}

func (e *env) repaint(L *lua.LState) int {
	L.Push(lua.LNumber(e.request(L, kernel.MsgRepaint, nil)))
	return 1
}

func (e *env) frame(L *lua.LState) int {
	L.Push(lua.LNumber(e.sys.Frames().Seq()))
	return 1
}

func (e *env) ink(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	var fb blit.FrameBuffer
	e.sys.Frames().Read(&fb)
	L.Push(lua.LBool(fb.Ink(x, y)))
	return 1
}

func (e *env) sleep(L *lua.LState) int {
	d := time.Duration(L.CheckInt(1)) * time.Millisecond
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-e.ctx.Done():
		L.RaiseError("%v", e.ctx.Err())
	case <-t.C:
	}
	return 0
}

func (e *env) log(L *lua.LState) int {
	e.sys.Log(kernel.EPScript, L.CheckString(1))
	return 0
}
