//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"bitlife/internal/app"
	"bitlife/internal/ctxlog"
	"bitlife/internal/trace"
	"bitlife/pkg/core"
	"bitlife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := ctxlog.New(os.Stderr, cfg.Debug)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	spawns, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Error("unknown sim", "sim", cfg.Sim, "available", core.SimNames())
		os.Exit(1)
	}
	sim := factory(cfg.SimMap())
	editor, ok := sim.(app.Editor)
	if !ok {
		logger.Error("sim does not support editing", "sim", cfg.Sim)
		os.Exit(1)
	}
	if h, ok := sim.(interface{ SetHook(life.Hook) }); ok && cfg.Debug {
		h.SetHook(trace.New(logger))
	}

	ctl := app.NewController(ctx, editor)
	ctl.SetTicksPerFrame(cfg.TicksPerFrame)
	if err := ctl.Apply(spawns); err != nil {
		logger.Warn("some startup patterns were skipped", "err", err)
	}

	game := app.New(sim, ctl, cfg.Scale)

	ebiten.SetWindowTitle("bitlife — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run game", "err", err)
		os.Exit(1)
	}
}
