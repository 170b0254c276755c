package app

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"lcdkit/hal"
	"lcdkit/internal/buildinfo"
	"lcdkit/kbd"
	"lcdkit/kernel"
	"lcdkit/script"
	"lcdkit/services/logger"
	"lcdkit/services/ui"
	"lcdkit/sim"
)

// Config selects what runs besides the event loop.
type Config struct {
	// Layout is the initial keyboard layout; empty means azerty.
	Layout string
	// Demo plays the demo animation, one frame per DemoPeriodMS.
	Demo         bool
	DemoPeriodMS uint64
	// Script is the path of a Lua script run once at startup.
	Script string
	// Serve starts the browser simulator on Bind, serving WWWDir.
	Serve  bool
	Bind   string
	WWWDir string
}

// Messages handled per step, per service.
const stepBudget = 32

type system struct {
	h    hal.HAL
	sys  *kernel.System
	loop *ui.Service
	log  *logger.Service
	cfg  Config

	nextDemo uint64
	errc     chan error
}

// New starts the simulator with the default config.
func New(ctx context.Context, h hal.HAL) func() error {
	return NewWithConfig(ctx, h, Config{})
}

// NewWithConfig starts the simulator and returns the step function the host
// runner calls once per tick. Background services stop when ctx is done;
// their errors are returned by the next step.
func NewWithConfig(ctx context.Context, h hal.HAL, cfg Config) func() error {
	s, err := newSystem(ctx, h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.step
}

func newSystem(ctx context.Context, h hal.HAL, cfg Config) (*system, error) {
	layout := kbd.Azerty
	if cfg.Layout != "" {
		l, err := kbd.ParseLayout(cfg.Layout)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		layout = l
	}
	if cfg.DemoPeriodMS == 0 {
		cfg.DemoPeriodMS = 100
	}

	k := kernel.NewSystem()
	s := &system{
		h:    h,
		sys:  k,
		loop: ui.New(k, h.Display(), h.Input(), h.Clipboard()),
		log:  logger.New(h.Logger(), k),
		cfg:  cfg,
		errc: make(chan error, 2),
	}
	s.loop.Context().Kbd.SetLayout(layout)
	s.loop.Start()
	k.Log(kernel.EPEventLoop, "lcdkit "+buildinfo.Short())

	var ticks <-chan uint64
	if ht := h.Time(); ht != nil {
		ticks = ht.Ticks()
	}
	if ticks == nil {
		k.StartTick(ctx)
	} else {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case seq := <-ticks:
					k.TickTo(seq)
				}
			}
		}()
	}

	if cfg.Serve {
		srv := sim.New(k, sim.Config{Bind: cfg.Bind, WWWDir: cfg.WWWDir})
		go func() {
			if err := srv.ListenAndServe(ctx); err != nil {
				s.errc <- err
			}
		}()
	}

	if cfg.Script != "" {
		r := script.New(k)
		go func() {
			if err := r.RunFile(ctx, cfg.Script); err != nil {
				if !errors.Is(err, context.Canceled) {
					s.errc <- err
				}
				return
			}
			k.Log(kernel.EPScript, "script: "+cfg.Script+" done")
		}()
	}
	return s, nil
}

// step runs the event loop and the logger until they are idle or out of
// budget. A panic in the event loop is shown on the panel and returned.
func (s *system) step() (err error) {
	defer func() {
		if v := recover(); v != nil {
			showPanic(s.h, v, debug.Stack())
			err = fmt.Errorf("app: panic: %v", v)
		}
	}()

	if s.cfg.Demo {
		if now := s.sys.Ticks(); now >= s.nextDemo {
			s.nextDemo = now + s.cfg.DemoPeriodMS
			s.sys.TrySend(kernel.EPEventLoop, kernel.EPEventLoop, kernel.MsgDemoTick, nil)
		}
	}

	for i := 0; i < stepBudget && s.loop.Step(); i++ {
	}
	for i := 0; i < stepBudget && s.log.Step(); i++ {
	}

	select {
	case err := <-s.errc:
		return err
	default:
		return nil
	}
}
