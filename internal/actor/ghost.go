package actor

import (
	"math"

	"github.com/ThoseGrapefruits/pacman/internal/core"
)

// Terrain tells a ghost which cells it may enter.
type Terrain interface {
	Passable(p core.Point) bool
}

// Distancer reports walking distances to the ghost's target, such as a
// maze.FlowField computed for the player's position.
type Distancer interface {
	Distance(p core.Point) (int, bool)
}

// Ghost colors, assigned round-robin by NewGhostAt callers via Paint.
var GhostColors = [4]core.Color{core.ColorRed, core.ColorPink, core.ColorCyan, core.ColorOrange}

const frightenedColor = core.ColorBrightBlue

// Ghost is an autonomous character that pursues a target cell.
type Ghost struct {
	body
	home       core.Point
	target     core.Point
	terrain    Terrain
	field      Distancer
	frightened bool
	color      core.Color
}

// NewGhost creates a ghost at (0, 0).
func NewGhost() *Ghost {
	return NewGhostAt(0, 0)
}

// NewGhostAt creates a ghost at (x, y). The start cell becomes its home.
func NewGhostAt(x, y int32) *Ghost {
	p := core.Pt(x, y)
	return &Ghost{
		body:   body{pos: p},
		home:   p,
		target: p,
		color:  core.ColorRed,
	}
}

// Paint sets the ghost's normal color.
func (g *Ghost) Paint(c core.Color) {
	g.color = c
}

// Home returns the ghost's start cell.
func (g *Ghost) Home() core.Point {
	return g.home
}

// SendHome moves the ghost back to its start cell.
func (g *Ghost) SendHome() {
	g.ShiftToPoint(g.home)
}

// SetTerrain sets the cells the ghost may enter. A nil terrain is an open field.
func (g *Ghost) SetTerrain(t Terrain) {
	g.terrain = t
}

// Chase points the ghost at target. field supplies path distances to target;
// when it is nil, or does not cover a cell, Manhattan distance is used.
func (g *Ghost) Chase(target core.Point, field Distancer) {
	g.target = target
	g.field = field
}

// Target returns the cell the ghost is pursuing.
func (g *Ghost) Target() core.Point {
	return g.target
}

// Frighten switches between pursuing and fleeing the target.
func (g *Ghost) Frighten(on bool) {
	g.frightened = on
}

// Frightened reports whether the ghost is fleeing.
func (g *Ghost) Frightened() bool {
	return g.frightened
}

// Next picks the adjacent cell closest to the target, or farthest while
// frightened. Ties go to the first of Up, Left, Down, Right. A ghost with no
// open neighbour stays where it is.
func (g *Ghost) Next() core.Point {
	best := g.pos
	bestScore := math.MaxInt
	if g.frightened {
		bestScore = math.MinInt
	}

	found := false
	for _, dir := range core.Cardinals {
		cand := g.pos.Step(dir)
		if g.terrain != nil && !g.terrain.Passable(cand) {
			continue
		}
		score := g.distance(cand)
		better := score < bestScore
		if g.frightened {
			better = score > bestScore
		}
		if !found || better {
			best, bestScore, found = cand, score, true
		}
	}
	return best
}

func (g *Ghost) distance(p core.Point) int {
	if g.field != nil {
		if d, ok := g.field.Distance(p); ok {
			return d
		}
	}
	return core.Manhattan(p, g.target)
}

// GoNext moves one cell along the pursuit policy.
func (g *Ghost) GoNext() {
	g.ShiftToPoint(g.Next())
}

// Draw renders the ghost.
func (g *Ghost) Draw(w core.Window) {
	glyph := core.Glyph{Primary: 'ᗣ', Fallback: 'M', Color: g.color}
	if g.frightened {
		glyph.Color = frightenedColor
	}
	glyph.Draw(w, int(g.Y()), int(g.X()))
}
