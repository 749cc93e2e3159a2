package core

import "errors"

// ErrClosed is returned by ReadKey once the terminal has been closed.
var ErrClosed = errors.New("terminal closed")

// KeyCode identifies a physical key, independent of the terminal library.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyRune            // Printable character, see Key.Rune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyCtrlC
	KeyF4
	KeyClose // Window or session closed by the user
)

// Key is a single key press read from a terminal.
type Key struct {
	Code KeyCode
	Rune rune // Set when Code is KeyRune
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k.Code {
	case KeyRune:
		return string(k.Rune)
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyCtrlC:
		return "Ctrl+C"
	case KeyF4:
		return "F4"
	case KeyClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// KeyReader is the blocking input half of a terminal.
type KeyReader interface {
	// ReadKey blocks until a key is pressed. It returns ErrClosed (possibly
	// wrapped) after the terminal is closed.
	ReadKey() (Key, error)
}

// Window is a rectangular drawing surface inside a terminal.
// Coordinates are relative to the window origin; drawing outside the window
// is clipped.
type Window interface {
	// Size returns the drawable rows and columns.
	Size() (rows, cols int)

	// Clear blanks the window.
	Clear()

	// DrawText writes text starting at row y, column x, in the default color.
	DrawText(y, x int, text string)

	// SetCell writes one colored rune.
	SetCell(y, x int, r rune, c Color)

	// CanRender reports whether the terminal can display r.
	CanRender(r rune) bool

	// Refresh pushes pending drawing to the terminal.
	Refresh() error
}

// Terminal is the narrow contract the game needs from a terminal library.
// Creating an implementation initializes the terminal; Close restores it.
type Terminal interface {
	KeyReader

	// MaxBounds returns the terminal size in rows and columns.
	MaxBounds() (rows, cols int)

	// CreateWindow opens a bordered window whose outer size is rows x cols
	// with its top-left corner at (originY, originX). The returned window
	// draws inside the border.
	CreateWindow(rows, cols, originY, originX int) (Window, error)

	// DestroyWindow erases the window border and releases it.
	DestroyWindow(w Window)

	// Close restores the terminal and unblocks pending ReadKey calls.
	Close() error
}

// Glyph pairs a display rune with the ASCII rune drawn when the terminal
// cannot render it.
type Glyph struct {
	Primary  rune
	Fallback rune
	Color    Color
}

// Draw writes the glyph at (y, x), substituting the fallback when needed.
func (g Glyph) Draw(w Window, y, x int) {
	r := g.Primary
	if !w.CanRender(r) {
		r = g.Fallback
	}
	w.SetCell(y, x, r, g.Color)
}
