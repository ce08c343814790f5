// Package config assembles runtime options from defaults, FOUNTAIN_*
// environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fountain/internal/particle"
)

// Window defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	MaxCapacity   = 1 << 16
)

type Config struct {
	Width, Height int

	Capacity int    // particle pool size
	Seed     uint64 // 0 = derive from the clock at startup

	SpritePath    string // empty = procedural sprite
	CPUBillboards bool   // expand quads on the CPU instead of a geometry shader
	VSync         bool
	Audio         bool
	Verbose       bool
}

func Default() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Capacity: particle.DefaultCapacity,
		VSync:    true,
		Audio:    true,
	}
}

// Load returns Default overridden by the environment (read through getenv)
// and then by args. Usage and parse errors are written to out.
func Load(name string, args []string, getenv func(string) string, out io.Writer) (Config, error) {
	cfg := Default()
	if getenv != nil {
		cfg.applyEnv(getenv)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	fs.IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "maximum number of particles")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = clock)")
	fs.StringVar(&cfg.SpritePath, "sprite", cfg.SpritePath, "particle sprite image (png, jpeg, bmp, tiff, webp)")
	fs.BoolVar(&cfg.CPUBillboards, "cpu-billboards", cfg.CPUBillboards, "build billboard quads on the CPU")
	fs.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "wait for vertical sync on present")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "play pause/resume cues")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, cfg.Validate()
}

// Malformed values are ignored, keeping the previous setting.
func (c *Config) applyEnv(getenv func(string) string) {
	if s := getenv("FOUNTAIN_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			c.Seed = v
		}
	}
	if s := getenv("FOUNTAIN_CAPACITY"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			c.Capacity = v
		}
	}
	if s := getenv("FOUNTAIN_SPRITE"); s != "" {
		c.SpritePath = s
	}
	envBool(getenv, "FOUNTAIN_CPU_BILLBOARDS", &c.CPUBillboards)
	envBool(getenv, "FOUNTAIN_VSYNC", &c.VSync)
	envBool(getenv, "FOUNTAIN_AUDIO", &c.Audio)
	envBool(getenv, "FOUNTAIN_VERBOSE", &c.Verbose)
}

func envBool(getenv func(string) string, key string, dst *bool) {
	if s := getenv(key); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			*dst = v
		}
	}
}

var (
	ErrWindowSize = errors.New("window size must be positive")
	ErrCapacity   = fmt.Errorf("capacity must be in [1, %d]", MaxCapacity)
)

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrWindowSize, c.Width, c.Height)
	}
	if c.Capacity < 1 || c.Capacity > MaxCapacity {
		return fmt.Errorf("%w: %d", ErrCapacity, c.Capacity)
	}
	return nil
}
