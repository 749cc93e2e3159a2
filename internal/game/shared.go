package game

import (
	"sync"

	"github.com/ThoseGrapefruits/pacman/internal/actor"
	"github.com/ThoseGrapefruits/pacman/internal/core"
)

// SharedPlayer guards the player for readers outside the game loop. The lock
// covers a single read or read-modify-write and is never held across a
// blocking call.
type SharedPlayer struct {
	mu sync.RWMutex
	p  *actor.Player
}

func newSharedPlayer(p *actor.Player) *SharedPlayer {
	return &SharedPlayer{p: p}
}

// Position returns the player's cell.
func (s *SharedPlayer) Position() core.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.Position()
}

// Heading returns the player's last accepted direction.
func (s *SharedPlayer) Heading() core.Direction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.Heading()
}

// Update runs fn with exclusive access to the player.
func (s *SharedPlayer) Update(fn func(p *actor.Player)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.p)
}

// View runs fn with shared access to the player. fn must not modify it.
func (s *SharedPlayer) View(fn func(p *actor.Player)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.p)
}
