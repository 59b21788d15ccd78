package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"bitlife/internal/app"
	"bitlife/internal/ctxlog"
	"bitlife/internal/trace"
	"bitlife/internal/tui"
	"bitlife/pkg/sims/life"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "life-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file (the terminal is owned by the UI)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := ctxlog.New(logOut, cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	spawns, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		return err
	}

	opts := []life.Option{}
	if cfg.Debug {
		opts = append(opts, life.WithHook(trace.New(logger)))
	}
	sim := life.NewSim(life.FromMap(cfg.SimMap()), opts...)

	ctl := app.NewController(ctx, sim)
	ctl.SetTicksPerFrame(cfg.TicksPerFrame)
	if err := ctl.Apply(spawns); err != nil {
		logger.Warn("some startup patterns were skipped", "err", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	logger.Info("starting", slog.Int("width", int(sim.Width())), slog.Int("height", int(sim.Height())))
	if err := tui.New(screen, ctl, cfg.TPS).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
