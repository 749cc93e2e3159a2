package game

import "github.com/ThoseGrapefruits/pacman/internal/core"

// Snapshot is a copy of the observable state of a round.
type Snapshot struct {
	Player     core.Point
	Heading    core.Direction
	Ghosts     []core.Point
	Coins      int
	Score      int
	Lives      int
	Ticks      int
	Frightened int
	Paused     bool
	MenuOpen   bool
	Outcome    Outcome
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Player:     s.player.Position(),
		Heading:    s.player.Heading(),
		Ghosts:     make([]core.Point, len(s.ghosts)),
		Coins:      len(s.coins),
		Score:      s.score,
		Lives:      s.lives,
		Ticks:      s.ticks,
		Frightened: s.frightened,
		Paused:     s.paused,
		MenuOpen:   s.nav.Active(),
		Outcome:    s.outcome,
	}
	for i, g := range s.ghosts {
		snap.Ghosts[i] = g.Position()
	}
	return snap
}
