package actor

import (
	"testing"

	"github.com/ThoseGrapefruits/pacman/internal/core"
)

type fakeWindow struct {
	unicode bool
	cells   map[[2]int]rune
	colors  map[[2]int]core.Color
}

func newFakeWindow(unicode bool) *fakeWindow {
	return &fakeWindow{unicode: unicode, cells: map[[2]int]rune{}, colors: map[[2]int]core.Color{}}
}

func (w *fakeWindow) Size() (int, int)               { return 40, 40 }
func (w *fakeWindow) Clear()                         {}
func (w *fakeWindow) DrawText(y, x int, text string) {}
func (w *fakeWindow) CanRender(r rune) bool          { return w.unicode || r < 0x80 }
func (w *fakeWindow) Refresh() error                 { return nil }
func (w *fakeWindow) SetCell(y, x int, r rune, c core.Color) {
	w.cells[[2]int{y, x}] = r
	w.colors[[2]int{y, x}] = c
}

// openField admits every cell except the listed walls.
type openField map[core.Point]bool

func (f openField) Passable(p core.Point) bool { return !f[p] }

func TestPlayerShift(t *testing.T) {
	p := NewPlayerAt(10, 10)
	if p.X() != 10 || p.Y() != 10 {
		t.Fatalf("NewPlayerAt(10, 10) at (%d, %d)", p.X(), p.Y())
	}

	p.Shift(10, 10)
	if p.X() != 20 || p.Y() != 20 {
		t.Errorf("after Shift(10, 10) at (%d, %d), expected (20, 20)", p.X(), p.Y())
	}

	p.ShiftTo(27, 34)
	if p.X() != 27 || p.Y() != 34 {
		t.Errorf("after ShiftTo(27, 34) at (%d, %d), expected (27, 34)", p.X(), p.Y())
	}

	p.ShiftToPoint(core.Pt(3, 4))
	if p.Position() != core.Pt(3, 4) {
		t.Errorf("after ShiftToPoint at %v, expected (3, 4)", p.Position())
	}
}

func TestPlayerNext(t *testing.T) {
	p := NewPlayerAt(5, 5)
	if p.Next() != core.Pt(5, 5) {
		t.Errorf("Next() without heading = %v, expected (5, 5)", p.Next())
	}

	tests := []struct {
		dir  core.Direction
		want core.Point
	}{
		{core.DirUp, core.Pt(5, 4)},
		{core.DirDown, core.Pt(5, 6)},
		{core.DirLeft, core.Pt(4, 5)},
		{core.DirRight, core.Pt(6, 5)},
	}

	for _, tc := range tests {
		p.Steer(tc.dir)
		if got := p.Next(); got != tc.want {
			t.Errorf("Next() heading %v = %v, expected %v", tc.dir, got, tc.want)
		}
		if p.Position() != core.Pt(5, 5) {
			t.Errorf("Next() moved the player to %v", p.Position())
		}
	}
}

func TestPlayerGoNext(t *testing.T) {
	p := NewPlayerAt(4, 5)
	p.Steer(core.DirRight)
	p.GoNext()
	if p.Position() != core.Pt(5, 5) {
		t.Errorf("GoNext() moved to %v, expected (5, 5)", p.Position())
	}
}

func TestCharacterInterface(t *testing.T) {
	chars := []Character{NewPlayer(), NewGhost()}
	for _, c := range chars {
		c.Shift(2, 3)
		if c.X() != 2 || c.Y() != 3 {
			t.Errorf("%T at (%d, %d) after Shift(2, 3)", c, c.X(), c.Y())
		}
	}
}

func TestGhostChase(t *testing.T) {
	g := NewGhostAt(5, 5)
	g.Chase(core.Pt(5, 9), nil)
	g.GoNext()
	if g.Position() != core.Pt(5, 6) {
		t.Errorf("ghost moved to %v, expected (5, 6)", g.Position())
	}
	if g.Home() != core.Pt(5, 5) {
		t.Errorf("Home() = %v, expected (5, 5)", g.Home())
	}

	g.SendHome()
	if g.Position() != core.Pt(5, 5) {
		t.Errorf("SendHome() left ghost at %v", g.Position())
	}
}

func TestGhostTieBreak(t *testing.T) {
	// Target diagonal up-left: Up and Left are equally close, Up wins.
	g := NewGhostAt(5, 5)
	g.Chase(core.Pt(3, 3), nil)
	if got := g.Next(); got != core.Pt(5, 4) {
		t.Errorf("Next() = %v, expected (5, 4)", got)
	}

	// Down and Right are equally close, Down wins.
	g.Chase(core.Pt(7, 7), nil)
	if got := g.Next(); got != core.Pt(5, 6) {
		t.Errorf("Next() = %v, expected (5, 6)", got)
	}
}

func TestGhostTerrain(t *testing.T) {
	g := NewGhostAt(5, 5)
	g.SetTerrain(openField{core.Pt(5, 6): true})
	g.Chase(core.Pt(5, 9), nil)

	// Down is blocked and the remaining neighbours tie, so Up wins.
	if got := g.Next(); got != core.Pt(5, 4) {
		t.Errorf("Next() = %v, expected (5, 4)", got)
	}

	boxed := openField{
		core.Pt(5, 4): true, core.Pt(4, 5): true,
		core.Pt(5, 6): true, core.Pt(6, 5): true,
	}
	g.SetTerrain(boxed)
	if got := g.Next(); got != core.Pt(5, 5) {
		t.Errorf("boxed ghost Next() = %v, expected to stay at (5, 5)", got)
	}
}

type fixedDistances map[core.Point]int

func (d fixedDistances) Distance(p core.Point) (int, bool) {
	v, ok := d[p]
	return v, ok
}

func TestGhostUsesField(t *testing.T) {
	g := NewGhostAt(5, 5)
	// The field says going Right is shorter even though Up is closer as the crow flies.
	field := fixedDistances{
		core.Pt(5, 4): 10,
		core.Pt(4, 5): 10,
		core.Pt(5, 6): 10,
		core.Pt(6, 5): 2,
	}
	g.Chase(core.Pt(5, 0), field)
	if got := g.Next(); got != core.Pt(6, 5) {
		t.Errorf("Next() = %v, expected (6, 5)", got)
	}
}

func TestGhostFrightened(t *testing.T) {
	g := NewGhostAt(5, 5)
	g.Chase(core.Pt(5, 9), nil)
	g.Frighten(true)
	if !g.Frightened() {
		t.Fatal("Frightened() = false after Frighten(true)")
	}
	if got := g.Next(); got != core.Pt(5, 4) {
		t.Errorf("frightened Next() = %v, expected (5, 4)", got)
	}

	w := newFakeWindow(true)
	g.Draw(w)
	if c := w.colors[[2]int{5, 5}]; c != frightenedColor {
		t.Errorf("frightened ghost drawn in %v, expected %v", c, frightenedColor)
	}
}

func TestDrawFallback(t *testing.T) {
	tests := []struct {
		name    string
		v       Visible
		unicode bool
		want    rune
	}{
		{"player unicode", NewPlayerAt(1, 2), true, 'ᗧ'},
		{"player ascii", NewPlayerAt(1, 2), false, 'C'},
		{"ghost unicode", NewGhostAt(1, 2), true, 'ᗣ'},
		{"ghost ascii", NewGhostAt(1, 2), false, 'M'},
		{"coin unicode", NewCoinAt(1, 2, false), true, '●'},
		{"coin ascii", NewCoinAt(1, 2, false), false, '.'},
		{"big coin ascii", NewCoinAt(1, 2, true), false, 'o'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newFakeWindow(tc.unicode)
			tc.v.Draw(w)
			if got := w.cells[[2]int{2, 1}]; got != tc.want {
				t.Errorf("Draw wrote %q at (y=2, x=1), expected %q", got, tc.want)
			}
		})
	}
}

func TestCoin(t *testing.T) {
	c := NewCoinAtPoint(core.Pt(3, 3), true)
	if !c.IsBig() || c.X() != 3 || c.Y() != 3 {
		t.Errorf("NewCoinAtPoint = %+v", c)
	}
	if NewCoin().Position() != core.Pt(0, 0) {
		t.Error("NewCoin() should sit at the origin")
	}
}

func TestCoinValue(t *testing.T) {
	s := Scoring{Coin: 1, BigCoin: 5, Ghost: 20}
	if v := NewCoin().Value(s); v != 1 {
		t.Errorf("coin Value() = %d, expected 1", v)
	}
	if v := NewCoinAt(0, 0, true).Value(s); v != 5 {
		t.Errorf("big coin Value() = %d, expected 5", v)
	}
}
