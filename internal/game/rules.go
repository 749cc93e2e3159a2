package game

import (
	"errors"
	"fmt"

	"github.com/ThoseGrapefruits/pacman/internal/actor"
)

// Rules are the tunable parameters of a round.
type Rules struct {
	Scoring         actor.Scoring
	Lives           int
	FrightenedTicks int
}

// DefaultRules returns the rules used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		Scoring:         actor.Scoring{Coin: 1, BigCoin: 5, Ghost: 20},
		Lives:           3,
		FrightenedTicks: 20,
	}
}

var ErrRules = errors.New("game: invalid rules")

// Validate reports rules that cannot produce a playable round.
func (r Rules) Validate() error {
	switch {
	case r.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrRules, r.Lives)
	case r.FrightenedTicks < 0:
		return fmt.Errorf("%w: frightened ticks must not be negative, got %d", ErrRules, r.FrightenedTicks)
	case r.Scoring.Coin < 0 || r.Scoring.BigCoin < 0 || r.Scoring.Ghost < 0:
		return fmt.Errorf("%w: scores must not be negative", ErrRules)
	}
	return nil
}
