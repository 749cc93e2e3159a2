package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ThoseGrapefruits/pacman/internal/core"
)

// KeyMap holds the bindings forwarded to the game. Keys outside the map are
// passed through as runes or dropped.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Pause  key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// DefaultKeyMap returns the arrow-key bindings the game understands.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Pause:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "pause/back")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "f4"), key.WithHelp("ctrl+c", "quit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Pause, k.Quit, k.Help},
	}
}

// Translate converts a Bubble Tea key message to a terminal key.
// It reports false for keys the game never sees.
func (k KeyMap) Translate(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.Key{Code: core.KeyUp}, true
	case key.Matches(msg, k.Down):
		return core.Key{Code: core.KeyDown}, true
	case key.Matches(msg, k.Left):
		return core.Key{Code: core.KeyLeft}, true
	case key.Matches(msg, k.Right):
		return core.Key{Code: core.KeyRight}, true
	case key.Matches(msg, k.Select):
		return core.Key{Code: core.KeyEnter}, true
	case key.Matches(msg, k.Pause):
		return core.Key{Code: core.KeyEscape}, true
	case key.Matches(msg, k.Quit):
		if msg.Type == tea.KeyF4 {
			return core.Key{Code: core.KeyF4}, true
		}
		return core.Key{Code: core.KeyCtrlC}, true
	case key.Matches(msg, k.Help):
		return core.Key{}, false
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return core.Key{Code: core.KeyRune, Rune: msg.Runes[0]}, true
	}
	return core.Key{}, false
}
