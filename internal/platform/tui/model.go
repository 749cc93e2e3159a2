package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ThoseGrapefruits/pacman/internal/core"
	"github.com/ThoseGrapefruits/pacman/internal/platform/bufterm"
)

// helpRows is the space reserved under the game for the key help.
const helpRows = 1

// PlayFunc runs one game on term and returns when it is over.
type PlayFunc func(ctx context.Context, term core.Terminal) error

// Bridge owns the in-memory terminal a game draws on and the latest frame
// rendered from it.
type Bridge struct {
	term *bufterm.Terminal

	mu    sync.Mutex
	frame string
	ready chan struct{}
}

// NewBridge creates a bridge for a program of width x height cells.
func NewBridge(width, height int, unicode bool) *Bridge {
	b := &Bridge{ready: make(chan struct{}, 1)}
	b.term = bufterm.New(max(height-helpRows, 0), width,
		bufterm.WithUnicode(unicode),
		bufterm.WithRenderer(b.publish),
	)
	return b
}

// Terminal is the terminal to hand to the game.
func (b *Bridge) Terminal() *bufterm.Terminal {
	return b.term
}

// Latest returns the most recently rendered frame.
func (b *Bridge) Latest() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

func (b *Bridge) publish(s *core.Screen) {
	frame := RenderScreen(s)
	b.mu.Lock()
	b.frame = frame
	b.mu.Unlock()
	select {
	case b.ready <- struct{}{}:
	default:
	}
}

// Start runs play on the bridge terminal in its own goroutine. The returned
// channel yields play's result once.
func (b *Bridge) Start(ctx context.Context, play PlayFunc) <-chan error {
	done := make(chan error, 1)
	go func() {
		err := play(ctx, b.term)
		b.term.Close()
		done <- err
	}()
	return done
}

// Model is the Bubble Tea model showing a bridged game.
type Model struct {
	bridge *Bridge
	keys   KeyMap
	help   help.Model
	frame  string
	done   bool
}

// NewModel creates a model for b using the default key map.
func NewModel(b *Bridge) Model {
	return Model{bridge: b, keys: DefaultKeyMap(), help: help.New()}
}

// Init starts waiting for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.bridge)
}

// Update forwards keys to the game and collects frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.frame = string(msg)
		return m, waitForFrame(m.bridge)

	case doneMsg:
		m.done = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.bridge.term.Resize(max(msg.Height-helpRows, 0), msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "?" {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if k, ok := m.keys.Translate(msg); ok {
			// ErrClosed here means the game already ended; doneMsg follows.
			_ = m.bridge.term.Send(k)
		}
		return m, nil
	}
	return m, nil
}

// View renders the latest frame with the key help below it.
func (m Model) View() string {
	if m.done {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.frame, m.help.View(m.keys))
}

// Run plays one game inside a Bubble Tea program until either side ends.
func Run(ctx context.Context, b *Bridge, play PlayFunc, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	played := b.Start(ctx, play)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, teaErr := tea.NewProgram(NewModel(b), opts...).Run()

	b.term.Close()
	err := <-played
	if teaErr != nil && !errors.Is(teaErr, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", teaErr)
	}
	return err
}
