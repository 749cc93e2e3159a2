// Package actor contains everything that stands on the playfield: the player,
// the ghosts chasing it and the coins it collects.
//
// Actors do no bounds checking. The game validates moves against the maze
// before committing them, or hands ghosts a Terrain that only admits legal
// cells.
package actor

import "github.com/ThoseGrapefruits/pacman/internal/core"

// Visible is a positioned entity that can draw itself.
type Visible interface {
	core.Location

	// Draw writes the entity's glyph at its coordinates, falling back to
	// ASCII when the window cannot render the glyph.
	Draw(w core.Window)
}

// Character is a movable actor.
type Character interface {
	Visible

	// Shift moves by (dx, dy).
	Shift(dx, dy int32)

	// ShiftTo moves to (x, y).
	ShiftTo(x, y int32)

	// ShiftToPoint moves to p. Equivalent to ShiftTo(p.X(), p.Y()).
	ShiftToPoint(p core.Point)

	// Next returns the cell the character intends to move to, without moving.
	Next() core.Point

	// GoNext moves to Next(). Equivalent to ShiftToPoint(Next()).
	GoNext()
}

// body holds the position shared by all characters.
type body struct {
	pos core.Point
}

func (b *body) X() int32 { return b.pos.X() }
func (b *body) Y() int32 { return b.pos.Y() }

// Position returns the current cell.
func (b *body) Position() core.Point { return b.pos }

func (b *body) Shift(dx, dy int32) {
	b.pos = b.pos.Shift(dx, dy)
}

func (b *body) ShiftTo(x, y int32) {
	b.pos = b.pos.ShiftTo(x, y)
}

func (b *body) ShiftToPoint(p core.Point) {
	b.ShiftTo(p.X(), p.Y())
}
