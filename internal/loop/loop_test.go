package loop

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ThoseGrapefruits/pacman/internal/core"
	"github.com/ThoseGrapefruits/pacman/internal/game"
	"github.com/ThoseGrapefruits/pacman/internal/input"
	"github.com/ThoseGrapefruits/pacman/internal/platform/bufterm"
)

var (
	enter = core.Key{Code: core.KeyEnter}
	right = core.Key{Code: core.KeyRight}
	down  = core.Key{Code: core.KeyDown}
	esc   = core.Key{Code: core.KeyEscape}
	quit  = core.Key{Code: core.KeyCtrlC}
	junk  = core.Key{Code: core.KeyRune, Rune: 'z'}
)

// corridor can be cleared with two steps to the right: a coin, then a big
// coin that lets the player eat the oncoming ghost.
var corridor = []string{
	"#########",
	"#P.o G###",
	"#########",
	"#G#G#G###",
	"#########",
}

// hall leaves the player plenty of room.
var hall = []string{
	"##############",
	"#P...........#",
	"#............#",
	"#............#",
	"#..........GG#",
	"#..........GG#",
	"##############",
}

func newGame(t *testing.T, layout []string) *game.State {
	t.Helper()
	s, err := game.New(game.DefaultRules(), layout)
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	return s
}

func runWithKeys(t *testing.T, s *game.State, cfg Config, keys ...core.Key) (*bufterm.Terminal, []string) {
	t.Helper()
	var frames []string
	term := bufterm.New(24, 80, bufterm.WithUnicode(false), bufterm.WithRenderer(func(f *core.Screen) {
		frames = append(frames, f.String())
	}))
	if err := term.SendKeys(keys...); err != nil {
		t.Fatalf("SendKeys() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := New(term, s, cfg, nil).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return term, frames
}

func TestRunOneTickPerMove(t *testing.T) {
	s := newGame(t, hall)
	runWithKeys(t, s, Config{}, enter, right, right, down, quit)

	snap := s.Snapshot()
	if snap.Player != core.Pt(3, 2) {
		t.Errorf("player at %v, expected (3, 2)", snap.Player)
	}
	if snap.Ticks != 3 {
		t.Errorf("Ticks = %d, expected 3", snap.Ticks)
	}
}

func TestRunIgnoresUnrecognized(t *testing.T) {
	s := newGame(t, hall)
	runWithKeys(t, s, Config{}, enter, junk, junk, junk, quit)

	if snap := s.Snapshot(); snap.Ticks != 0 || snap.Player != core.Pt(1, 1) {
		t.Errorf("unrecognized keys changed the game: %+v", snap)
	}
}

func TestRunWinThenQuitFromMenu(t *testing.T) {
	s := newGame(t, corridor)
	_, frames := runWithKeys(t, s, Config{}, enter, right, right, quit)

	if s.Outcome() != game.Won {
		t.Errorf("Outcome() = %v, expected won", s.Outcome())
	}
	if len(frames) == 0 || !strings.Contains(frames[len(frames)-1], "YOU WIN") {
		t.Error("last frame should announce the win")
	}
}

func TestRunPauseStopsTicks(t *testing.T) {
	s := newGame(t, hall)
	// Esc pauses; moves then drive the pause menu instead of the player.
	runWithKeys(t, s, Config{}, enter, esc, right, down, quit)

	snap := s.Snapshot()
	if snap.Ticks != 0 || snap.Player != core.Pt(1, 1) {
		t.Errorf("paused game ticked: %+v", snap)
	}
	if !snap.Paused {
		t.Errorf("expected the game to stay paused, got %+v", snap)
	}
}

func TestRunResumeFromPause(t *testing.T) {
	s := newGame(t, hall)
	runWithKeys(t, s, Config{}, enter, esc, esc, right, quit)

	snap := s.Snapshot()
	if snap.Paused || snap.Player != core.Pt(2, 1) {
		t.Errorf("expected to resume and move, got %+v", snap)
	}
}

func TestRunQuitFromTitle(t *testing.T) {
	s := newGame(t, hall)
	// New game, Controls, Quit: two downs land on Quit.
	runWithKeys(t, s, Config{}, down, down, enter)

	if snap := s.Snapshot(); snap.Ticks != 0 {
		t.Errorf("game ticked after quitting from the title menu: %+v", snap)
	}
}

func TestRunVerboseFooter(t *testing.T) {
	tests := []struct {
		verbose int
		want    string
	}{
		{1, "MoveRight t1 q"},
		{2, " P(2, 1) G"},
	}

	for _, tc := range tests {
		s := newGame(t, hall)
		_, frames := runWithKeys(t, s, Config{Verbose: tc.verbose}, enter, right, quit)

		found := false
		for _, f := range frames {
			found = found || strings.Contains(f, tc.want)
		}
		if !found {
			t.Errorf("verbose %d: no frame contains %q", tc.verbose, tc.want)
		}
	}
}

func TestRunFixedRate(t *testing.T) {
	s := newGame(t, hall)
	term := bufterm.New(24, 80)
	term.Send(enter)

	done := make(chan error, 1)
	go func() { done <- New(term, s, Config{TickRate: 2 * time.Millisecond}, nil).Run(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	term.Send(quit)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop on Quit")
	}
	if s.Ticks() == 0 {
		t.Error("fixed-rate loop should tick without input")
	}
}

func TestRunTerminalTooSmall(t *testing.T) {
	s := newGame(t, hall)
	term := bufterm.New(4, 10)

	err := New(term, s, Config{}, nil).Run(context.Background())
	if !errors.Is(err, ErrTooSmall) {
		t.Errorf("Run() error = %v, expected ErrTooSmall", err)
	}
}

func TestRunEndsWhenTerminalCloses(t *testing.T) {
	s := newGame(t, hall)
	term := bufterm.New(24, 80)
	term.Send(enter)

	done := make(chan error, 1)
	go func() { done <- New(term, s, Config{}, nil).Run(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	term.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, expected a clean stop", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() still running after the terminal closed")
	}
}

func TestRunContextCancel(t *testing.T) {
	s := newGame(t, hall)
	term := bufterm.New(24, 80)
	term.Send(enter)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(term, s, Config{}, nil).Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, expected context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() ignored cancellation")
	}
}

type halvingPacer struct{}

func (halvingPacer) Interval(base time.Duration, _, ticks int) time.Duration {
	if ticks > 0 {
		return base / 2
	}
	return base
}

func TestRunPacerSpeedsUp(t *testing.T) {
	s := newGame(t, hall)
	term := bufterm.New(24, 80)
	term.Send(enter)

	cfg := Config{TickRate: 4 * time.Millisecond, Pacer: halvingPacer{}}
	done := make(chan error, 1)
	go func() { done <- New(term, s, cfg, nil).Run(context.Background()) }()

	time.Sleep(40 * time.Millisecond)
	term.Send(quit)
	if err := <-done; err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if s.Ticks() < 2 {
		t.Errorf("Ticks() = %d, expected the paced loop to keep ticking", s.Ticks())
	}
}

// slowTerm delays some key reads and records teardown calls.
type slowTerm struct {
	*bufterm.Terminal
	jitter bool

	mu     sync.Mutex
	events []string
}

func (t *slowTerm) ReadKey() (core.Key, error) {
	if t.jitter && rand.IntN(4) == 0 {
		time.Sleep(time.Duration(rand.IntN(200)) * time.Microsecond)
	}
	return t.Terminal.ReadKey()
}

func (t *slowTerm) DestroyWindow(w core.Window) {
	t.record("destroy")
	t.Terminal.DestroyWindow(w)
}

func (t *slowTerm) Close() error {
	t.record("close")
	return t.Terminal.Close()
}

func (t *slowTerm) record(ev string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, ev)
}

func TestRunDestroysWindowBeforeClose(t *testing.T) {
	s := newGame(t, hall)
	term := &slowTerm{Terminal: bufterm.New(24, 80)}
	term.SendKeys(enter, right, quit)

	if err := New(term, s, Config{}, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(term.events) < 2 || term.events[0] != "destroy" || term.events[1] != "close" {
		t.Errorf("teardown = %v, expected the window destroyed before the terminal closes", term.events)
	}
}

var appliedCommand = regexp.MustCompile(`command cmd=(\w+)`)

func TestRunAppliesCommandsInKeyOrder(t *testing.T) {
	const n = 300
	pool := []core.Key{
		{Code: core.KeyUp}, {Code: core.KeyDown}, {Code: core.KeyLeft}, {Code: core.KeyRight},
		{Code: core.KeyEscape}, {Code: core.KeyRune, Rune: 'z'},
	}
	keys := make([]core.Key, n)
	want := make([]string, 0, n+1)
	for i := range keys {
		keys[i] = pool[rand.IntN(len(pool))]
		want = append(want, input.Classify(keys[i]).String())
	}
	want = append(want, input.Quit.String())

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	s := newGame(t, hall)
	term := &slowTerm{Terminal: bufterm.New(24, 80), jitter: true}
	go func() {
		term.Send(enter)
		for _, k := range keys {
			if rand.IntN(8) == 0 {
				time.Sleep(time.Duration(rand.IntN(100)) * time.Microsecond)
			}
			if term.Send(k) != nil {
				return
			}
		}
		term.Send(quit)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := New(term, s, Config{}, logger).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got []string
	for _, m := range appliedCommand.FindAllStringSubmatch(buf.String(), -1) {
		got = append(got, m[1])
	}
	if len(got) != len(want) {
		t.Fatalf("applied %d commands, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("command %d = %s, expected %s", i, got[i], want[i])
		}
	}
}
