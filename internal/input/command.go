// Package input turns terminal keys into game commands and delivers them to
// the main loop in order.
package input

import "github.com/ThoseGrapefruits/pacman/internal/core"

// Command is a classified key press.
type Command uint8

const (
	Unrecognized Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Pause
	Select
	Quit
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "MoveUp"
	case MoveDown:
		return "MoveDown"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case Pause:
		return "Pause"
	case Select:
		return "Select"
	case Quit:
		return "Quit"
	default:
		return "Unrecognized"
	}
}

// Classify maps a key to its command. Keys without a binding are
// Unrecognized.
func Classify(k core.Key) Command {
	switch k.Code {
	case core.KeyUp:
		return MoveUp
	case core.KeyDown:
		return MoveDown
	case core.KeyLeft:
		return MoveLeft
	case core.KeyRight:
		return MoveRight
	case core.KeyEscape:
		return Pause
	case core.KeyEnter:
		return Select
	case core.KeyCtrlC, core.KeyF4, core.KeyClose:
		return Quit
	}
	return Unrecognized
}

// IsMove reports whether c steers the player.
func (c Command) IsMove() bool {
	return c >= MoveUp && c <= MoveRight
}

// Direction returns the heading of a movement command, or DirNone.
func (c Command) Direction() core.Direction {
	switch c {
	case MoveUp:
		return core.DirUp
	case MoveDown:
		return core.DirDown
	case MoveLeft:
		return core.DirLeft
	case MoveRight:
		return core.DirRight
	}
	return core.DirNone
}
