//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"lcdkit/gfx/blit"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int
	// Preview draws each presented frame on the terminal and reads keys
	// from it.
	Preview bool
	// Snapshot, when set, is the path of a bitmap written with the last
	// frame on exit.
	Snapshot string
}

// RunHeadless runs the simulator without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var logw io.Writer = os.Stdout
	if cfg.Preview {
		logw = os.Stderr
	}
	h := newHost(logw)
	if cfg.Preview {
		p := &termPreview{out: os.Stdout}
		h.fb.onPresent = p.present
		in, err := startTermInput(os.Stdin, h.kbd, cancel)
		if err != nil {
			return err
		}
		defer in.Close()
	}
	step := newApp(h)

	err := runTicks(ctx, h, step, d, cfg)
	if cfg.Snapshot != "" {
		var fb blit.FrameBuffer
		h.fb.Snapshot(&fb)
		if serr := SaveBMP(cfg.Snapshot, &fb); serr != nil {
			err = errors.Join(err, serr)
		}
	}
	return err
}

func runTicks(ctx context.Context, h *hostHAL, step func() error, d time.Duration, cfg HeadlessConfig) error {
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.advance()
			if step != nil {
				for i := 0; i < cfg.StepBudget; i++ {
					if err := step(); err != nil {
						return err
					}
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
