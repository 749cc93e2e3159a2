// Package game owns the state of a round and the per-tick transition that
// advances it. State is mutated in place by a single goroutine, the main
// loop; the player is additionally reachable through a SharedPlayer for
// concurrent readers.
package game

import (
	"fmt"

	"github.com/ThoseGrapefruits/pacman/internal/actor"
	"github.com/ThoseGrapefruits/pacman/internal/core"
	"github.com/ThoseGrapefruits/pacman/internal/maze"
	"github.com/ThoseGrapefruits/pacman/internal/menu"
)

// Outcome is the result of a round.
type Outcome uint8

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// State is one round of the game.
type State struct {
	rules Rules
	maze  *maze.Maze
	field *maze.FlowField

	player  *SharedPlayer
	ghosts  []*actor.Ghost
	coins   []actor.Coin
	pending core.Direction

	menus menus
	nav   *menu.Navigator

	paused     bool
	score      int
	lives      int
	ticks      int
	frightened int
	outcome    Outcome
}

// New parses layout and places the actors on it.
func New(rules Rules, layout []string) (*State, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	m, err := maze.Parse(layout)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	mn, err := buildMenus()
	if err != nil {
		return nil, err
	}

	start := m.PlayerStart()
	s := &State{
		rules:  rules,
		maze:   m,
		field:  maze.NewFlowField(m),
		player: newSharedPlayer(actor.NewPlayerAt(start.X(), start.Y())),
		menus:  mn,
		nav:    menu.NewNavigator(mn.tree),
	}
	s.Reset()
	return s, nil
}

// Reset starts the round over with a full maze and all lives.
func (s *State) Reset() {
	start := s.maze.PlayerStart()
	s.player.Update(func(p *actor.Player) {
		p.ShiftToPoint(start)
		p.Steer(core.DirNone)
	})

	homes := s.maze.GhostStarts()
	s.ghosts = make([]*actor.Ghost, len(homes))
	for i, h := range homes {
		g := actor.NewGhostAt(h.X(), h.Y())
		g.Paint(actor.GhostColors[i%len(actor.GhostColors)])
		g.SetTerrain(ghostTerrain{s: s, self: i})
		s.ghosts[i] = g
	}

	spots := s.maze.Coins()
	s.coins = make([]actor.Coin, len(spots))
	for i, c := range spots {
		s.coins[i] = actor.NewCoinAtPoint(c.At, c.Big)
	}

	s.pending = core.DirNone
	s.paused = false
	s.score = 0
	s.lives = s.rules.Lives
	s.ticks = 0
	s.frightened = 0
	s.outcome = Playing
	s.nav.Close()
}

// resetPositions puts every actor back on its start cell after a lost life.
func (s *State) resetPositions() {
	start := s.maze.PlayerStart()
	s.player.Update(func(p *actor.Player) {
		p.ShiftToPoint(start)
		p.Steer(core.DirNone)
	})
	for _, g := range s.ghosts {
		g.SendHome()
		g.Frighten(false)
	}
	s.pending = core.DirNone
	s.frightened = 0
}

// ghostTerrain admits open maze cells that no other ghost stands on.
type ghostTerrain struct {
	s    *State
	self int
}

func (t ghostTerrain) Passable(p core.Point) bool {
	if !t.s.maze.Passable(p) {
		return false
	}
	for i, g := range t.s.ghosts {
		if i != t.self && g.Position() == p {
			return false
		}
	}
	return true
}

// Player returns the lock-protected player handle.
func (s *State) Player() *SharedPlayer {
	return s.player
}

// Maze returns the parsed layout.
func (s *State) Maze() *maze.Maze {
	return s.maze
}

// Ghosts returns the ghosts. Callers must not move them.
func (s *State) Ghosts() []*actor.Ghost {
	return s.ghosts
}

// Coins returns the coins still on the board.
func (s *State) Coins() []actor.Coin {
	return append([]actor.Coin(nil), s.coins...)
}

func (s *State) Paused() bool     { return s.paused }
func (s *State) Score() int       { return s.score }
func (s *State) Lives() int       { return s.lives }
func (s *State) Ticks() int       { return s.ticks }
func (s *State) Outcome() Outcome { return s.outcome }

// Over reports whether the round has been won or lost.
func (s *State) Over() bool {
	return s.outcome != Playing
}

// Steer buffers a movement for the next tick. The heading is remembered even
// if the move turns out to be blocked.
func (s *State) Steer(d core.Direction) {
	s.pending = d
	s.player.Update(func(p *actor.Player) { p.Steer(d) })
}

// Tick advances the round by one step. It returns false without changing
// anything when the game is paused or over.
func (s *State) Tick() bool {
	if s.paused || s.outcome != Playing {
		return false
	}
	s.ticks++
	if s.frightened > 0 {
		s.frightened--
	}

	// Ghosts chase the cell the player is leaving.
	from := s.player.Position()
	s.field.Compute(from)
	ghostsFrom := make([]core.Point, len(s.ghosts))
	for i, g := range s.ghosts {
		ghostsFrom[i] = g.Position()
		g.Chase(from, s.field)
		g.Frighten(s.frightened > 0)
		g.GoNext()
	}

	to := from
	if s.pending != core.DirNone {
		if next := from.Step(s.pending); s.maze.Passable(next) {
			to = next
			s.player.Update(func(p *actor.Player) { p.ShiftToPoint(next) })
		}
		s.pending = core.DirNone
	}

	s.collectCoins(to)
	if s.collide(from, to, ghostsFrom) {
		return true
	}
	if len(s.coins) == 0 {
		s.finish(Won)
	}
	return true
}

func (s *State) collectCoins(at core.Point) {
	kept := s.coins[:0]
	for _, c := range s.coins {
		if c.Position() != at {
			kept = append(kept, c)
			continue
		}
		s.score += c.Value(s.rules.Scoring)
		if c.IsBig() && s.rules.FrightenedTicks > 0 {
			s.frightened = s.rules.FrightenedTicks
			for _, g := range s.ghosts {
				g.Frighten(true)
			}
		}
	}
	s.coins = kept
}

// collide resolves ghosts meeting the player, either on the same cell or by
// swapping cells this tick. It reports whether a life was lost.
func (s *State) collide(from, to core.Point, ghostsFrom []core.Point) bool {
	for i, g := range s.ghosts {
		at := g.Position()
		met := at == to || (at == from && ghostsFrom[i] == to)
		if !met {
			continue
		}
		if s.frightened > 0 {
			g.SendHome()
			g.Frighten(false)
			s.score += s.rules.Scoring.Ghost
			continue
		}

		s.lives--
		if s.lives <= 0 {
			s.lives = 0
			s.finish(Lost)
		} else {
			s.resetPositions()
		}
		return true
	}
	return false
}

func (s *State) finish(o Outcome) {
	s.outcome = o
	s.frightened = 0
	for _, g := range s.ghosts {
		g.Frighten(false)
	}
	s.nav.Open(s.menus.main)
}

// Frightened returns how many ticks the ghosts keep fleeing.
func (s *State) Frightened() int {
	return s.frightened
}

// TogglePause opens or closes the pause menu. Finished rounds cannot pause.
func (s *State) TogglePause() {
	if s.outcome != Playing {
		return
	}
	s.paused = !s.paused
	if s.paused {
		s.nav.Open(s.menus.pause)
	} else {
		s.nav.Close()
	}
}

// OpenMainMenu shows the title menu.
func (s *State) OpenMainMenu() {
	s.nav.Open(s.menus.main)
}

// MenuActive reports whether a menu is being shown.
func (s *State) MenuActive() bool {
	return s.nav.Active()
}

// Navigator returns the menu navigator.
func (s *State) Navigator() *menu.Navigator {
	return s.nav
}

// MenuInput feeds one navigation input to the open menu and applies the
// resulting action.
func (s *State) MenuInput(in menu.Input) menu.Action {
	return s.ApplyAction(s.nav.Apply(in))
}

// ApplyAction carries out a menu action. Quit is left to the caller.
func (s *State) ApplyAction(a menu.Action) menu.Action {
	switch a {
	case menu.ActionResume:
		if s.outcome != Playing {
			// Nothing to resume once the round has ended.
			s.nav.Open(s.menus.main)
			return menu.ActionNone
		}
		s.paused = false
		s.nav.Close()
	case menu.ActionRestart:
		s.Reset()
	}
	return a
}
