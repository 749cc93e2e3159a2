package game

import (
	"fmt"

	"github.com/ThoseGrapefruits/pacman/internal/actor"
	"github.com/ThoseGrapefruits/pacman/internal/core"
)

var wallGlyph = core.Glyph{Primary: '█', Fallback: '#', Color: core.ColorBlue}

const (
	hudRows    = 1
	footerRows = 1
	minCols    = 32
)

// Size returns the drawable area a window needs to show the round: the HUD
// line, the maze and one footer line.
func (s *State) Size() (rows, cols int) {
	return int(s.maze.Height()) + hudRows + footerRows, max(int(s.maze.Width()), minCols)
}

// FooterRow is the window row left free for diagnostics.
func (s *State) FooterRow() int {
	return int(s.maze.Height()) + hudRows
}

// shifted offsets drawing so maze coordinates land below the HUD.
type shifted struct {
	core.Window
	dy, dx int
}

func (w shifted) Size() (rows, cols int) {
	rows, cols = w.Window.Size()
	return rows - w.dy, cols - w.dx
}

func (w shifted) SetCell(y, x int, r rune, c core.Color) {
	w.Window.SetCell(y+w.dy, x+w.dx, r, c)
}

func (w shifted) DrawText(y, x int, text string) {
	w.Window.DrawText(y+w.dy, x+w.dx, text)
}

// Draw renders the HUD, maze, actors and any open menu into w. It does not
// refresh the window.
func (s *State) Draw(w core.Window) {
	w.Clear()
	w.DrawText(0, 0, s.hud())

	_, cols := w.Size()
	board := shifted{Window: w, dy: hudRows, dx: max((cols-int(s.maze.Width()))/2, 0)}
	for y := int32(0); y < s.maze.Height(); y++ {
		for x := int32(0); x < s.maze.Width(); x++ {
			if s.maze.Wall(core.Pt(x, y)) {
				wallGlyph.Draw(board, int(y), int(x))
			}
		}
	}

	var visible []actor.Visible
	for _, c := range s.coins {
		visible = append(visible, c)
	}
	for _, g := range s.ghosts {
		visible = append(visible, g)
	}
	for _, v := range visible {
		v.Draw(board)
	}
	s.player.View(func(p *actor.Player) { p.Draw(board) })

	if s.nav.Active() {
		s.nav.Draw(shifted{Window: w, dy: hudRows})
	}
}

func (s *State) hud() string {
	line := fmt.Sprintf("SCORE %d  LIVES %d", s.score, s.lives)
	switch {
	case s.outcome == Won:
		line += "  YOU WIN"
	case s.outcome == Lost:
		line += "  GAME OVER"
	case s.paused:
		line += "  PAUSED"
	case s.frightened > 0:
		line += fmt.Sprintf("  POWER %d", s.frightened)
	}
	return line
}
