//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"lcdkit/app"
	"lcdkit/hal"
	"lcdkit/sim"
)

func main() {
	var (
		hcfg hal.HeadlessConfig
		wcfg hal.WindowConfig
		cfg  app.Config
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&hcfg.Preview, "preview", false, "Draw the panel on the terminal in headless mode.")
	flag.StringVar(&hcfg.Snapshot, "snapshot", "", "Write the last frame to this .bmp file on exit (headless mode).")
	flag.IntVar(&wcfg.Zoom, "zoom", 2, "Window scale.")
	flag.StringVar(&cfg.Layout, "layout", "azerty", "Keyboard layout: azerty|qwerty.")
	flag.BoolVar(&cfg.Demo, "demo", false, "Play the demo animation.")
	flag.Uint64Var(&cfg.DemoPeriodMS, "demo-ms", 100, "Milliseconds per demo frame.")
	flag.StringVar(&cfg.Script, "script", "", "Run a Lua script at startup.")
	flag.BoolVar(&cfg.Serve, "serve", false, "Serve the browser simulator.")
	flag.StringVar(&cfg.Bind, "bind", sim.DefaultBind, "Browser simulator listen address.")
	flag.StringVar(&cfg.WWWDir, "www", "www", "Directory with the browser simulator assets.")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(ctx, h, cfg)
	}

	if hcfg.Enabled {
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, wcfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
