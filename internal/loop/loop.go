// Package loop runs a game on a terminal: it shows the title menu, starts the
// input listener and applies queued commands to the game state, redrawing
// after each one.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ThoseGrapefruits/pacman/internal/core"
	"github.com/ThoseGrapefruits/pacman/internal/game"
	"github.com/ThoseGrapefruits/pacman/internal/input"
	"github.com/ThoseGrapefruits/pacman/internal/menu"
)

// ErrTooSmall is returned when the terminal cannot hold the game window.
var ErrTooSmall = errors.New("loop: terminal too small")

// Config tunes the loop.
type Config struct {
	// TickRate advances the game on a timer when positive. At zero the game
	// ticks once per movement command.
	TickRate time.Duration

	// Pacer, when set, shortens the fixed-rate interval as the round
	// progresses.
	Pacer Pacer

	// Verbose enables the diagnostic footer: 1 shows the last command, the
	// tick and the queue depth, 2 adds actor coordinates.
	Verbose int
}

// Pacer maps the base tick interval to the interval for the current score
// and tick count.
type Pacer interface {
	Interval(base time.Duration, score, ticks int) time.Duration
}

// Loop drives one game on one terminal.
type Loop struct {
	term   core.Terminal
	state  *game.State
	cfg    Config
	logger *log.Logger

	win   core.Window
	queue *input.Queue
	last  input.Command
}

// New creates a loop. A nil logger discards output.
func New(term core.Terminal, state *game.State, cfg Config, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{term: term, state: state, cfg: cfg, logger: logger, last: input.Unrecognized}
}

// Run plays until the player quits, the terminal closes or ctx is done. The
// terminal is closed before Run returns. A closed terminal or Quit is a
// normal end and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	defer l.term.Close()

	rows, cols := l.state.Size()
	rows, cols = rows+2, cols+2
	maxRows, maxCols := l.term.MaxBounds()
	if rows > maxRows || cols > maxCols {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, cols, rows, maxCols, maxRows)
	}

	win, err := l.term.CreateWindow(rows, cols, (maxRows-rows)/2, (maxCols-cols)/2)
	if err != nil {
		return fmt.Errorf("loop: create window: %w", err)
	}
	l.win = win
	destroy := sync.OnceFunc(func() { l.term.DestroyWindow(win) })
	defer destroy()

	// The title menu reads keys itself, before the listener owns the terminal.
	l.state.OpenMainMenu()
	a, err := l.state.Navigator().OpenSelection(l.term, win)
	if err != nil {
		return l.readError(err)
	}
	if l.state.ApplyAction(a) == menu.ActionQuit {
		l.logger.Info("quit from title menu")
		return nil
	}
	l.logger.Info("round started", "tick_rate", l.cfg.TickRate)

	ctx, cancel := context.WithCancel(ctx)
	l.queue = input.NewQueue()
	listener := input.NewListener(l.term, l.queue, l.logger)
	listenerDone := make(chan error, 1)
	go func() { listenerDone <- listener.Run(ctx) }()
	// The window goes before the terminal is restored.
	defer func() {
		cancel()
		destroy()
		l.term.Close()
		<-listenerDone
	}()

	var (
		ticker   *time.Ticker
		ticks    <-chan time.Time
		interval time.Duration
	)
	if l.cfg.TickRate > 0 {
		interval = l.interval()
		ticker = time.NewTicker(interval)
		defer ticker.Stop()
		ticks = ticker.C
	}

	if err := l.draw(); err != nil {
		return l.readError(err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-l.queue.Ready():
			for {
				cmd, ok := l.queue.TryPop()
				if !ok {
					break
				}
				if l.apply(cmd) {
					l.logger.Info("quit", "score", l.state.Score(), "ticks", l.state.Ticks())
					return nil
				}
				if err := l.draw(); err != nil {
					return l.readError(err)
				}
			}
			if closed, err := l.queue.Closed(); closed && l.queue.Len() == 0 {
				return l.readError(err)
			}
			continue

		case <-ticks:
			l.tick()
			if next := l.interval(); next != interval {
				l.logger.Debug("pace changed", "interval", next)
				interval = next
				ticker.Reset(interval)
			}
		}

		if err := l.draw(); err != nil {
			return l.readError(err)
		}
	}
}

// readError turns a terminal error into Run's result.
func (l *Loop) readError(err error) error {
	if err == nil || errors.Is(err, core.ErrClosed) || errors.Is(err, input.ErrClosed) {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	l.logger.Error("terminal failure", "err", err)
	return fmt.Errorf("loop: %w", err)
}

// apply carries out one command and reports whether the game should end.
func (l *Loop) apply(cmd input.Command) bool {
	l.last = cmd
	l.logger.Debug("command", "cmd", cmd.String(), "menu", l.state.MenuActive())

	if l.state.MenuActive() {
		in, ok := menuInput(cmd)
		if !ok {
			return false
		}
		return l.state.MenuInput(in) == menu.ActionQuit
	}

	switch {
	case cmd == input.Quit:
		return true
	case cmd == input.Pause:
		l.state.TogglePause()
	case cmd.IsMove():
		l.state.Steer(cmd.Direction())
		if l.cfg.TickRate == 0 {
			l.tick()
		}
	}
	return false
}

func (l *Loop) interval() time.Duration {
	if l.cfg.Pacer == nil {
		return l.cfg.TickRate
	}
	if d := l.cfg.Pacer.Interval(l.cfg.TickRate, l.state.Score(), l.state.Ticks()); d > 0 {
		return d
	}
	return l.cfg.TickRate
}

func (l *Loop) tick() {
	wasOver := l.state.Over()
	lives := l.state.Lives()
	if !l.state.Tick() {
		return
	}
	if l.state.Lives() < lives && !l.state.Over() {
		l.logger.Info("life lost", "lives", l.state.Lives())
	}
	if !wasOver && l.state.Over() {
		l.logger.Info("round over", "outcome", l.state.Outcome().String(), "score", l.state.Score(), "ticks", l.state.Ticks())
	}
}

func menuInput(cmd input.Command) (menu.Input, bool) {
	switch cmd {
	case input.MoveUp:
		return menu.InputUp, true
	case input.MoveDown:
		return menu.InputDown, true
	case input.Select:
		return menu.InputSelect, true
	case input.Pause:
		return menu.InputBack, true
	case input.Quit:
		return menu.InputQuit, true
	}
	return 0, false
}

func (l *Loop) draw() error {
	l.state.Draw(l.win)
	if l.cfg.Verbose > 0 {
		l.win.DrawText(l.state.FooterRow(), 0, l.diagnostics())
	}
	return l.win.Refresh()
}

func (l *Loop) diagnostics() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s t%d q%d", l.last, l.state.Ticks(), l.queue.Len())
	if l.cfg.Verbose > 1 {
		snap := l.state.Snapshot()
		fmt.Fprintf(&sb, " P%s", snap.Player)
		for _, g := range snap.Ghosts {
			fmt.Fprintf(&sb, " G%s", g)
		}
	}
	return sb.String()
}
