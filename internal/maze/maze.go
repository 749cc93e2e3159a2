// Package maze parses text layouts into a walled grid with the start cells
// of every actor and the coin positions, and computes path distances over it.
package maze

import (
	"errors"
	"fmt"

	"github.com/ThoseGrapefruits/pacman/internal/core"
)

// GhostCount is the number of ghost start cells a layout must provide.
const GhostCount = 4

// Layout characters.
const (
	runeWall    = '#'
	runeCoin    = '.'
	runeBigCoin = 'o'
	runePlayer  = 'P'
	runeGhost   = 'G'
	runeFloor   = ' '
)

var (
	ErrEmpty       = errors.New("maze: layout is empty")
	ErrRagged      = errors.New("maze: rows have different widths")
	ErrPlayerStart = errors.New("maze: layout needs exactly one player start")
	ErrGhostStarts = fmt.Errorf("maze: layout needs exactly %d ghost starts", GhostCount)
	ErrNoCoins     = errors.New("maze: layout has no coins")
)

// CoinSpot is a cell that starts with a coin.
type CoinSpot struct {
	At  core.Point
	Big bool
}

// Maze is an immutable parsed layout.
type Maze struct {
	width  int32
	height int32
	walls  []bool // Row-major, width*height

	player core.Point
	ghosts []core.Point
	coins  []CoinSpot
}

// Parse builds a Maze from text rows. Rows shorter than the widest row are
// rejected rather than padded so that layouts stay rectangular.
func Parse(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
		if len(grid[y]) != len(grid[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRagged, y, len(grid[y]), len(grid[0]))
		}
	}

	m := &Maze{
		width:  int32(len(grid[0])),
		height: int32(len(grid)),
	}
	m.walls = make([]bool, int(m.width)*int(m.height))

	players := 0
	for y, row := range grid {
		for x, ch := range row {
			p := core.Pt(int32(x), int32(y))
			switch ch {
			case runeWall:
				m.walls[m.index(p)] = true
			case runeCoin:
				m.coins = append(m.coins, CoinSpot{At: p})
			case runeBigCoin:
				m.coins = append(m.coins, CoinSpot{At: p, Big: true})
			case runePlayer:
				m.player = p
				players++
			case runeGhost:
				m.ghosts = append(m.ghosts, p)
			case runeFloor:
			default:
				return nil, fmt.Errorf("maze: unexpected %q at row %d, column %d", ch, y, x)
			}
		}
	}

	if players != 1 {
		return nil, fmt.Errorf("%w, found %d", ErrPlayerStart, players)
	}
	if len(m.ghosts) != GhostCount {
		return nil, fmt.Errorf("%w, found %d", ErrGhostStarts, len(m.ghosts))
	}
	if len(m.coins) == 0 {
		return nil, ErrNoCoins
	}

	return m, nil
}

// MustParse is like Parse but panics on error. Intended for built-in layouts.
func MustParse(rows []string) *Maze {
	m, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Maze) index(p core.Point) int {
	return int(p.Y())*int(m.width) + int(p.X())
}

// Width returns the number of columns.
func (m *Maze) Width() int32 { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int32 { return m.height }

// InBounds reports whether p lies inside the grid.
func (m *Maze) InBounds(p core.Point) bool {
	return p.X() >= 0 && p.X() < m.width && p.Y() >= 0 && p.Y() < m.height
}

// Wall reports whether p is a wall. Cells outside the grid count as walls.
func (m *Maze) Wall(p core.Point) bool {
	if !m.InBounds(p) {
		return true
	}
	return m.walls[m.index(p)]
}

// Passable reports whether an actor may stand on p.
func (m *Maze) Passable(p core.Point) bool {
	return !m.Wall(p)
}

// PlayerStart returns the player's start cell.
func (m *Maze) PlayerStart() core.Point { return m.player }

// GhostStarts returns a copy of the ghost start cells in layout order.
func (m *Maze) GhostStarts() []core.Point {
	out := make([]core.Point, len(m.ghosts))
	copy(out, m.ghosts)
	return out
}

// Coins returns a copy of the initial coin layout in row-major order.
func (m *Maze) Coins() []CoinSpot {
	out := make([]CoinSpot, len(m.coins))
	copy(out, m.coins)
	return out
}
