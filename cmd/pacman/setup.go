package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ThoseGrapefruits/pacman/internal/config"
	"github.com/ThoseGrapefruits/pacman/internal/core"
	"github.com/ThoseGrapefruits/pacman/internal/game"
	"github.com/ThoseGrapefruits/pacman/internal/loop"
	"github.com/ThoseGrapefruits/pacman/internal/registry"
)

// loadConfig resolves the config file and applies the global flags on top.
func loadConfig(cmd *cobra.Command) (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, preset)
	}
	if flagLayout != "" {
		if !registry.Exists(flagLayout) {
			return cfg, fmt.Errorf("unknown layout %q, run 'pacman list' to see the built-in mazes", flagLayout)
		}
		cfg.Maze.Name = flagLayout
		cfg.Maze.Rows = nil
	}
	if cmd.Flags().Changed("tick-rate") {
		cfg.Loop.TickRate = flagTickRate
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds a logger whose level follows the -v count.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level := log.WarnLevel
	switch {
	case flagVerbose >= 2:
		level = log.DebugLevel
	case flagVerbose == 1:
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// openLog opens the local play log. The terminal belongs to the game, so
// nothing is logged to stderr while playing.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return newLogger(f, "pacman"), func() { f.Close() }, nil
}

// player returns a function that plays one fresh round per call.
func player(cfg config.GameConfig, logger *log.Logger) (func(ctx context.Context, term core.Terminal) error, error) {
	rows, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	rules := cfg.Rules()

	return func(ctx context.Context, term core.Terminal) error {
		state, err := game.New(rules, rows)
		if err != nil {
			term.Close()
			return err
		}

		lc := loop.Config{TickRate: cfg.Loop.TickRate, Verbose: flagVerbose}
		if cfg.Difficulty.Enabled && cfg.Loop.TickRate > 0 {
			lc.Pacer = config.NewDifficultyManager(cfg.Difficulty)
		}
		return loop.New(term, state, lc, logger).Run(ctx)
	}, nil
}
