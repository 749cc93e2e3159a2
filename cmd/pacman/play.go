package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ThoseGrapefruits/pacman/internal/config"
	"github.com/ThoseGrapefruits/pacman/internal/platform/tcellterm"
	"github.com/ThoseGrapefruits/pacman/internal/platform/tui"
)

var (
	flagFrontend string
	flagLogPath  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a round in this terminal.

Controls:
  Arrows     - Move / navigate menus
  Enter      - Select menu item
  Esc        - Pause menu / back
  Ctrl+C, F4 - Quit

Difficulty options:
  easy   - Five lives, long power-ups, slow pace
  normal - Three lives (default)
  hard   - Two lives, short power-ups, fast pace
  fixed  - Pace does not speed up with the score

Frontends:
  tcell  - Draw directly on the terminal (default)
  tea    - Run inside a Bubble Tea program

Examples:
  pacman play
  pacman play --layout small
  pacman play --difficulty hard --tick-rate 120ms
  pacman play --frontend tea
  pacman play --config ./my-pacman.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFrontend, "frontend", "tcell", "Terminal frontend: tcell or tea")
	cmd.Flags().StringVar(&flagLogPath, "log", config.DefaultLogPath(), "Log file (empty disables logging)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagFrontend != "tcell" && flagFrontend != "tea" {
		return fmt.Errorf("unknown frontend %q (expected tcell or tea)", flagFrontend)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := openLog(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	play, err := player(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", flagFrontend, "layout", cfg.Maze.Name, "tick_rate", cfg.Loop.TickRate)

	if flagFrontend == "tea" {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.Run(ctx, tui.NewBridge(width, height, true), play, tea.WithAltScreen())
	} else {
		t, termErr := tcellterm.New()
		if termErr != nil {
			return termErr
		}
		err = play(ctx, t)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		logger.Error("game ended with error", "err", err)
	}
	return err
}
