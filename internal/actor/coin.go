package actor

import "github.com/ThoseGrapefruits/pacman/internal/core"

var (
	coinGlyph    = core.Glyph{Primary: '●', Fallback: '.', Color: core.ColorYellow}
	bigCoinGlyph = core.Glyph{Primary: '◉', Fallback: 'o', Color: core.ColorBrightWhite}
)

// Coin is a static collectible. Coins never move; the game removes them when
// the player lands on their cell.
type Coin struct {
	at  core.Point
	big bool
}

// NewCoin creates a regular coin at (0, 0).
func NewCoin() Coin {
	return Coin{}
}

// NewCoinAt creates a coin at (x, y). A big coin frightens the ghosts.
func NewCoinAt(x, y int32, big bool) Coin {
	return Coin{at: core.Pt(x, y), big: big}
}

// NewCoinAtPoint creates a coin at p.
func NewCoinAtPoint(p core.Point, big bool) Coin {
	return Coin{at: p, big: big}
}

func (c Coin) X() int32 { return c.at.X() }
func (c Coin) Y() int32 { return c.at.Y() }

// Position returns the coin's cell.
func (c Coin) Position() core.Point { return c.at }

// IsBig reports whether collecting the coin frightens the ghosts.
func (c Coin) IsBig() bool { return c.big }

// Draw renders the coin.
func (c Coin) Draw(w core.Window) {
	g := coinGlyph
	if c.big {
		g = bigCoinGlyph
	}
	g.Draw(w, int(c.Y()), int(c.X()))
}

// Scoring holds the points awarded for each collectible.
type Scoring struct {
	Coin    int
	BigCoin int
	Ghost   int
}

// Value returns the points the coin is worth under s.
func (c Coin) Value(s Scoring) int {
	if c.big {
		return s.BigCoin
	}
	return s.Coin
}
