// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"fmt"
	"time"

	"github.com/ThoseGrapefruits/pacman/internal/actor"
	"github.com/ThoseGrapefruits/pacman/internal/game"
	"github.com/ThoseGrapefruits/pacman/internal/maze"
	"github.com/ThoseGrapefruits/pacman/internal/registry"
)

// GameConfig contains all configuration for a game.
type GameConfig struct {
	Maze       MazeConfig       `yaml:"maze"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Loop       LoopConfig       `yaml:"loop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MazeConfig selects the layout. Inline rows take precedence over a name.
type MazeConfig struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ScoringConfig defines the points awarded per collectible.
type ScoringConfig struct {
	Coin    int `yaml:"coin"`
	BigCoin int `yaml:"big_coin"`
	Ghost   int `yaml:"ghost"`
}

// GameplayConfig defines round parameters.
type GameplayConfig struct {
	Lives           int `yaml:"lives"`
	FrightenedTicks int `yaml:"frightened_ticks"` // Ticks ghosts flee after a big coin
}

// LoopConfig defines how the game is paced.
type LoopConfig struct {
	TickRate time.Duration `yaml:"tick_rate"` // 0 = one tick per move
}

// DifficultyConfig defines how a fixed-rate game speeds up.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Tick speed added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.FrightenedTicks = 30
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.FrightenedTicks = 10
	}
}

// Layout resolves the maze rows, from inline rows or the layout registry.
func (c GameConfig) Layout() ([]string, error) {
	if len(c.Maze.Rows) > 0 {
		return append([]string(nil), c.Maze.Rows...), nil
	}
	name := c.Maze.Name
	if name == "" {
		name = maze.DefaultLayout
	}
	l, err := registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return l.Rows, nil
}

// Rules converts the scoring and gameplay sections for the game package.
func (c GameConfig) Rules() game.Rules {
	return game.Rules{
		Scoring: actor.Scoring{
			Coin:    c.Scoring.Coin,
			BigCoin: c.Scoring.BigCoin,
			Ghost:   c.Scoring.Ghost,
		},
		Lives:           c.Gameplay.Lives,
		FrightenedTicks: c.Gameplay.FrightenedTicks,
	}
}

// Validate checks that the config describes a playable game.
func (c GameConfig) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Loop.TickRate < 0 {
		return fmt.Errorf("config: tick_rate must not be negative, got %s", c.Loop.TickRate)
	}
	rows, err := c.Layout()
	if err != nil {
		return err
	}
	if _, err := maze.Parse(rows); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
