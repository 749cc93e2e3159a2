package actor

import "github.com/ThoseGrapefruits/pacman/internal/core"

var playerGlyph = core.Glyph{Primary: 'ᗧ', Fallback: 'C', Color: core.ColorYellow}

// Player is the character driven by keyboard input.
type Player struct {
	body
	heading core.Direction
}

// NewPlayer creates a player at (0, 0).
func NewPlayer() *Player {
	return NewPlayerAt(0, 0)
}

// NewPlayerAt creates a player at (x, y).
func NewPlayerAt(x, y int32) *Player {
	return &Player{body: body{pos: core.Pt(x, y)}}
}

// Steer sets the heading used by Next. DirNone makes Next a no-op.
func (p *Player) Steer(d core.Direction) {
	p.heading = d
}

// Heading returns the last accepted direction.
func (p *Player) Heading() core.Direction {
	return p.heading
}

// Next returns the neighbouring cell in the current heading.
func (p *Player) Next() core.Point {
	return p.pos.Step(p.heading)
}

// GoNext moves one cell in the current heading.
func (p *Player) GoNext() {
	p.ShiftToPoint(p.Next())
}

// Draw renders the player.
func (p *Player) Draw(w core.Window) {
	playerGlyph.Draw(w, int(p.Y()), int(p.X()))
}
