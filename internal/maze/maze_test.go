package maze

import (
	"errors"
	"testing"

	"github.com/ThoseGrapefruits/pacman/internal/core"
	"github.com/ThoseGrapefruits/pacman/internal/registry"
)

var testRows = []string{
	"#########",
	"#P..o...#",
	"#.#####.#",
	"#GG   GG#",
	"#########",
}

func TestParse(t *testing.T) {
	m, err := Parse(testRows)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.Width() != 9 || m.Height() != 5 {
		t.Errorf("size = %dx%d, expected 9x5", m.Width(), m.Height())
	}
	if m.PlayerStart() != core.Pt(1, 1) {
		t.Errorf("PlayerStart() = %v, expected (1, 1)", m.PlayerStart())
	}

	ghosts := m.GhostStarts()
	want := []core.Point{core.Pt(1, 3), core.Pt(2, 3), core.Pt(6, 3), core.Pt(7, 3)}
	if len(ghosts) != len(want) {
		t.Fatalf("GhostStarts() has %d cells, expected %d", len(ghosts), len(want))
	}
	for i := range want {
		if ghosts[i] != want[i] {
			t.Errorf("ghost %d at %v, expected %v", i, ghosts[i], want[i])
		}
	}

	coins := m.Coins()
	if len(coins) != 8 {
		t.Errorf("Coins() has %d coins, expected 8", len(coins))
	}
	bigs := 0
	for _, c := range coins {
		if c.Big {
			bigs++
			if c.At != core.Pt(4, 1) {
				t.Errorf("big coin at %v, expected (4, 1)", c.At)
			}
		}
	}
	if bigs != 1 {
		t.Errorf("found %d big coins, expected 1", bigs)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"empty", nil, ErrEmpty},
		{"ragged", []string{"####", "#P."}, ErrRagged},
		{"no player", []string{"#.GGGG#"}, ErrPlayerStart},
		{"two players", []string{"#PP.GGGG#"}, ErrPlayerStart},
		{"three ghosts", []string{"#P.GGG#"}, ErrGhostStarts},
		{"no coins", []string{"#P GGGG#"}, ErrNoCoins},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.rows)
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestParseUnknownRune(t *testing.T) {
	if _, err := Parse([]string{"#P.GGGG?#"}); err == nil {
		t.Error("Parse() should reject unknown layout characters")
	}
}

func TestPassable(t *testing.T) {
	m := MustParse(testRows)

	tests := []struct {
		name string
		p    core.Point
		want bool
	}{
		{"floor", core.Pt(3, 3), true},
		{"coin", core.Pt(2, 1), true},
		{"wall", core.Pt(0, 0), false},
		{"left of grid", core.Pt(-1, 1), false},
		{"below grid", core.Pt(1, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Passable(tc.p); got != tc.want {
				t.Errorf("Passable(%v) = %v, expected %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestBuiltinLayoutsParse(t *testing.T) {
	for _, l := range registry.List() {
		t.Run(l.ID, func(t *testing.T) {
			m, err := Parse(l.Rows)
			if err != nil {
				t.Fatalf("Parse(%s) error = %v", l.ID, err)
			}

			// Every coin must be reachable from the player start
			f := NewFlowField(m)
			f.Compute(m.PlayerStart())
			for _, c := range m.Coins() {
				if _, ok := f.Distance(c.At); !ok {
					t.Errorf("coin at %v is unreachable", c.At)
				}
			}
			for _, g := range m.GhostStarts() {
				if _, ok := f.Distance(g); !ok {
					t.Errorf("ghost start %v is unreachable", g)
				}
			}
		})
	}
	if !registry.Exists(DefaultLayout) {
		t.Errorf("default layout %q is not registered", DefaultLayout)
	}
}
