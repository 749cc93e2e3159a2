package config

import (
	_ "embed"

	"github.com/ThoseGrapefruits/pacman/internal/maze"
)

//go:embed defaults/pacman.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Maze: MazeConfig{
			Name: maze.DefaultLayout,
		},
		Scoring: ScoringConfig{
			Coin:    1,
			BigCoin: 5,
			Ghost:   20,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			FrightenedTicks: 20,
		},
		Loop: LoopConfig{
			TickRate: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
