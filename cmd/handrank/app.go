package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/handrank/internal/config"
	"github.com/lox/handrank/internal/randutil"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	ctx    context.Context
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
	clock  quartz.Clock
}

func newApp(ctx context.Context, g *Globals, out, errOut io.Writer, clock quartz.Clock) (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if g.Debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(errOut, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "handrank",
	})

	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		logger.SetColorProfile(termenv.Ascii)
	}

	logger.Debug("Loaded configuration", "path", g.Config, "log_level", cfg.LogLevel)

	return &app{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
		out:    out,
		clock:  clock,
	}, nil
}

// seed returns the flag seed, else the configured one, else one from the clock.
func (a *app) seed(flag *int64) int64 {
	switch {
	case flag != nil:
		return *flag
	case a.cfg.Seed != 0:
		return a.cfg.Seed
	default:
		return randutil.Seed(a.clock)
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func pick[T comparable](flag, fallback T) T {
	var zero T
	if flag != zero {
		return flag
	}
	return fallback
}

func checkCards(n int) error {
	if n < 5 || n > config.MaxCards {
		return fmt.Errorf("cards must be between 5 and %d, got %d", config.MaxCards, n)
	}
	return nil
}
