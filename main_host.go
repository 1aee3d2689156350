//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"glim/app"
	"glim/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var meshPath string
	flag.StringVar(&meshPath, "mesh", "", "OBJ file to load on the 3 key.")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.New(h, app.Config{MeshPath: meshPath})
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil && !errors.Is(err, app.ErrExit) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
