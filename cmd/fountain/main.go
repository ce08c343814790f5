//go:build !android

// Command fountain renders a particle fountain of camera-facing billboards.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"fountain/internal/config"
	"fountain/internal/game"
	"fountain/internal/logging"
)

func main() {
	cfg, err := config.Load("fountain", os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fountain: %v\n", err)
		os.Exit(2)
	}
	logging.SetLogger(logging.NewText(os.Stderr, cfg.Verbose))

	if err := game.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fountain: %v\n", err)
		os.Exit(1)
	}
}
