package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ThoseGrapefruits/pacman/internal/maze"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := parse(defaultGameYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultGameConfig()
	if cfg.Maze.Name != def.Maze.Name || cfg.Scoring != def.Scoring || cfg.Gameplay != def.Gameplay ||
		cfg.Loop != def.Loop || cfg.Difficulty != def.Difficulty {
		t.Errorf("embedded config = %+v, expected %+v", cfg, def)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
maze:
  name: small
gameplay:
  lives: 7
loop:
  tick_rate: 150ms
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Maze.Name != "small" || cfg.Gameplay.Lives != 7 || cfg.Loop.TickRate != 150*time.Millisecond {
		t.Errorf("Load() = %+v", cfg)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Scoring.Ghost != 20 || cfg.Gameplay.FrightenedTicks != 20 {
		t.Errorf("missing keys lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail on a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("gameplay: [this is not a map"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("embedded lives = %d, expected 3", cfg.Gameplay.Lives)
	}

	// ./configs beats the embedded file.
	os.MkdirAll(filepath.Join(work, "configs"), 0o755)
	os.WriteFile(filepath.Join(work, "configs", FileName), []byte("gameplay:\n  lives: 4\n"), 0o644)
	if cfg, _ := Load(""); cfg.Gameplay.Lives != 4 {
		t.Errorf("local lives = %d, expected 4", cfg.Gameplay.Lives)
	}

	// ~/.pacman/configs beats ./configs.
	userDir := filepath.Join(home, ".pacman", "configs")
	os.MkdirAll(userDir, 0o755)
	os.WriteFile(filepath.Join(userDir, FileName), []byte("gameplay:\n  lives: 6\n"), 0o644)
	if cfg, _ := Load(""); cfg.Gameplay.Lives != 6 {
		t.Errorf("user lives = %d, expected 6", cfg.Gameplay.Lives)
	}

	// A broken user file is skipped.
	os.WriteFile(filepath.Join(userDir, FileName), []byte("gameplay: ["), 0o644)
	if cfg, _ := Load(""); cfg.Gameplay.Lives != 4 {
		t.Errorf("lives = %d, expected the local file after a broken user file", cfg.Gameplay.Lives)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParsePreset(%q) = (%q, %v)", tc.in, got, err)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		lives      int
		frightened int
		enabled    bool
		level      float64
	}{
		{DifficultyEasy, 5, 30, true, 0.0},
		{DifficultyNormal, 3, 20, true, 0.3},
		{DifficultyHard, 2, 10, true, 0.7},
		{DifficultyFixed, 3, 20, false, 0.3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives || cfg.Gameplay.FrightenedTicks != tc.frightened {
				t.Errorf("gameplay = %+v", cfg.Gameplay)
			}
			if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("difficulty = %+v", cfg.Difficulty)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	cfg := DefaultGameConfig()
	rows, err := cfg.Layout()
	if err != nil || len(rows) == 0 {
		t.Fatalf("Layout() = (%d rows, %v)", len(rows), err)
	}

	cfg.Maze.Name = ""
	if _, err := cfg.Layout(); err != nil {
		t.Errorf("empty name should fall back to %q: %v", maze.DefaultLayout, err)
	}

	cfg.Maze.Name = "missing"
	if _, err := cfg.Layout(); err == nil {
		t.Error("Layout() should fail for an unknown name")
	}

	cfg.Maze.Rows = []string{"#P.GGGG#"}
	rows, err = cfg.Layout()
	if err != nil || len(rows) != 1 {
		t.Errorf("inline rows should win over the name: (%v, %v)", rows, err)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"no lives", func(c *GameConfig) { c.Gameplay.Lives = 0 }},
		{"negative tick rate", func(c *GameConfig) { c.Loop.TickRate = -time.Second }},
		{"negative score", func(c *GameConfig) { c.Scoring.Coin = -1 }},
		{"broken rows", func(c *GameConfig) { c.Maze.Rows = []string{"#P#"} }},
		{"unknown layout", func(c *GameConfig) { c.Maze.Name = "nope" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestRules(t *testing.T) {
	r := DefaultGameConfig().Rules()
	if r.Lives != 3 || r.FrightenedTicks != 20 || r.Scoring.BigCoin != 5 {
		t.Errorf("Rules() = %+v", r)
	}
}

func TestDifficultyInterval(t *testing.T) {
	base := 200 * time.Millisecond
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 200 * time.Millisecond},
		{100, 100 * time.Millisecond},
		{500, 100 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := d.Interval(base, tc.score, 0); got != tc.want {
			t.Errorf("Interval(score %d) = %v, expected %v", tc.score, got, tc.want)
		}
	}

	if got := d.Interval(0, 100, 0); got != 0 {
		t.Errorf("Interval() with no base = %v, expected 0", got)
	}

	d.SetEnabled(false)
	if got := d.Interval(base, 100, 0); got != base {
		t.Errorf("disabled Interval() = %v, expected %v", got, base)
	}
}

func TestDifficultyIntervalFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{SpeedMultiplier: 100},
	})
	if got := d.Interval(100*time.Millisecond, 0, 0); got != minInterval {
		t.Errorf("Interval() = %v, expected floor %v", got, minInterval)
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
	})
	if got := d.Level(0, 5); got != 0.75 {
		t.Errorf("Level() = %v, expected 0.75", got)
	}
	d.SetInitialLevel(2)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("Level() = %v, expected the clamped initial level", got)
	}
}
