package hal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lcdkit/gfx/blit"

	"golang.org/x/image/bmp"
)

func TestRenderText(t *testing.T) {
	var fb blit.FrameBuffer
	blit.ClearRegion(&fb, blit.Full())
	blit.InvertRegion(&fb, blit.ClipRegion{X0: 0, X1: 4, Y0: 0, Y1: 4})

	var out bytes.Buffer
	if err := RenderText(&out, &fb, 84, 67); err != nil {
		t.Fatalf("RenderText() err = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\r\n"), "\r\n")
	if len(lines) != 67 {
		t.Fatalf("RenderText() rows = %d, want 67", len(lines))
	}
	first := []rune(lines[0])
	if len(first) != 84 {
		t.Fatalf("RenderText() cols = %d, want 84", len(first))
	}
	if first[0] != '▀' || first[1] != ' ' {
		t.Fatalf("RenderText() first cells = %q", string(first[:2]))
	}
	if strings.TrimSpace(lines[1]) != "" {
		t.Fatalf("RenderText() second row = %q, want blank", lines[1])
	}
}

func TestFramebufferPresentHook(t *testing.T) {
	f := newHostFramebuffer()
	if f.Width() != 336 || f.Height() != 536 {
		t.Fatalf("size = %dx%d", f.Width(), f.Height())
	}

	var src blit.FrameBuffer
	src[0] = 0x1234_5678
	f.Update(&src)

	var got blit.FrameBuffer
	f.onPresent = func(fb *blit.FrameBuffer) error {
		got = *fb
		return nil
	}
	if err := f.Present(); err != nil {
		t.Fatalf("Present() err = %v", err)
	}
	if got[0] != 0x1234_5678 {
		t.Fatalf("hook saw word %#x", got[0])
	}
	if f.presented() != 1 {
		t.Fatalf("presented() = %d, want 1", f.presented())
	}

	var snap blit.FrameBuffer
	f.Snapshot(&snap)
	if snap != src {
		t.Fatalf("Snapshot() differs from Update()")
	}
}

func TestWriteBMP(t *testing.T) {
	var fb blit.FrameBuffer
	blit.ClearRegion(&fb, blit.Full())
	blit.InvertRegion(&fb, blit.ClipRegion{X0: 10, X1: 20, Y0: 5, Y1: 6})

	var out bytes.Buffer
	if err := WriteBMP(&out, &fb); err != nil {
		t.Fatalf("WriteBMP() err = %v", err)
	}
	img, err := bmp.Decode(&out)
	if err != nil {
		t.Fatalf("bmp.Decode() err = %v", err)
	}
	if b := img.Bounds(); b.Dx() != blit.PxPerLine || b.Dy() != blit.Lines {
		t.Fatalf("bounds = %v", b)
	}
	ink, _, _, _ := img.At(15, 5).RGBA()
	bg, _, _, _ := img.At(15, 6).RGBA()
	if ink != 0 || bg != 0xffff {
		t.Fatalf("pixels = ink %#x bg %#x", ink, bg)
	}
}

func TestRunHeadless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last.bmp")
	steps := 0
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		var fb blit.FrameBuffer
		blit.Stripes(&fb)
		h.Display().Framebuffer().Update(&fb)
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 3, StepBudget: 2, Snapshot: path})
	if err != nil {
		t.Fatalf("RunHeadless() err = %v", err)
	}
	if steps != 6 {
		t.Fatalf("steps = %d, want 6", steps)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Fatalf("snapshot not written: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{}); err != context.Canceled {
		t.Fatalf("RunHeadless() on a canceled context err = %v", err)
	}
}

func TestHostTimeKeepsLatest(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	ht := newHostTime()
	ht.now = func() time.Time { return now }

	if got := ht.advance(); got != 1 {
		t.Fatalf("first advance() = %d, want 1", got)
	}
	now = base.Add(5 * time.Millisecond)
	ht.advance()
	now = base.Add(12*time.Millisecond + 300*time.Microsecond)
	ht.advance()

	select {
	case got := <-ht.Ticks():
		if got != 13 {
			t.Fatalf("Ticks() = %d, want 13", got)
		}
	default:
		t.Fatalf("Ticks() is empty")
	}
	select {
	case got := <-ht.Ticks():
		t.Fatalf("stale tick %d left behind", got)
	default:
	}
}
