// Package tcellterm implements core.Terminal on a tcell screen.
package tcellterm

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/ThoseGrapefruits/pacman/internal/core"
)

var palette = map[core.Color]tcell.Color{
	core.ColorDefault:     tcell.ColorDefault,
	core.ColorRed:         tcell.ColorRed,
	core.ColorGreen:       tcell.ColorGreen,
	core.ColorYellow:      tcell.ColorYellow,
	core.ColorBlue:        tcell.ColorNavy,
	core.ColorMagenta:     tcell.ColorPurple,
	core.ColorCyan:        tcell.ColorTeal,
	core.ColorWhite:       tcell.ColorSilver,
	core.ColorBrightBlue:  tcell.ColorBlue,
	core.ColorBrightWhite: tcell.ColorWhite,
	core.ColorOrange:      tcell.ColorOrange,
	core.ColorPink:        tcell.ColorPink,
	core.ColorGray:        tcell.ColorGray,
}

func style(c core.Color) tcell.Style {
	if tc, ok := palette[c]; ok {
		return tcell.StyleDefault.Foreground(tc)
	}
	return tcell.StyleDefault
}

// Terminal wraps an initialized tcell screen.
type Terminal struct {
	screen tcell.Screen

	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
}

var _ core.Terminal = (*Terminal)(nil)

// New opens the controlling terminal.
func New() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellterm: new screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes s and takes ownership of it.
func NewWithScreen(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("tcellterm: init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return &Terminal{screen: s}, nil
}

// ReadKey blocks for the next key event. Resize events repaint the screen
// and are otherwise swallowed.
func (t *Terminal) ReadKey() (core.Key, error) {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return core.Key{}, core.ErrClosed
		case *tcell.EventKey:
			return translate(ev), nil
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func translate(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return core.Key{Code: core.KeyRune, Rune: ev.Rune()}
	case tcell.KeyUp:
		return core.Key{Code: core.KeyUp}
	case tcell.KeyDown:
		return core.Key{Code: core.KeyDown}
	case tcell.KeyLeft:
		return core.Key{Code: core.KeyLeft}
	case tcell.KeyRight:
		return core.Key{Code: core.KeyRight}
	case tcell.KeyEnter:
		return core.Key{Code: core.KeyEnter}
	case tcell.KeyEscape:
		return core.Key{Code: core.KeyEscape}
	case tcell.KeyCtrlC:
		return core.Key{Code: core.KeyCtrlC}
	case tcell.KeyF4:
		return core.Key{Code: core.KeyF4}
	}
	return core.Key{Code: core.KeyUnknown}
}

// MaxBounds returns the screen size.
func (t *Terminal) MaxBounds() (rows, cols int) {
	cols, rows = t.screen.Size()
	return rows, cols
}

// CreateWindow draws a border and returns the window inside it.
func (t *Terminal) CreateWindow(rows, cols, originY, originX int) (core.Window, error) {
	if t.isClosed() {
		return nil, core.ErrClosed
	}
	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("tcellterm: window %dx%d is too small for a border", cols, rows)
	}
	maxRows, maxCols := t.MaxBounds()
	if originY < 0 || originX < 0 || originY+rows > maxRows || originX+cols > maxCols {
		return nil, fmt.Errorf("tcellterm: window %dx%d at (%d, %d) does not fit in %dx%d",
			cols, rows, originX, originY, maxCols, maxRows)
	}

	w := &Window{term: t, outer: core.NewRect(originX, originY, cols, rows)}
	w.border()
	return w, nil
}

// DestroyWindow blanks the window including its border.
func (t *Terminal) DestroyWindow(cw core.Window) {
	w, ok := cw.(*Window)
	if !ok || t.isClosed() {
		return
	}
	for y := w.outer.Y; y < w.outer.Bottom(); y++ {
		for x := w.outer.X; x < w.outer.Right(); x++ {
			t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
	t.screen.Show()
}

// Close restores the terminal. Pending ReadKey calls return core.ErrClosed.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		t.closed = true
		t.mu.Unlock()
		t.screen.Fini()
	})
	return nil
}

func (t *Terminal) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Window is a bordered region of the screen.
type Window struct {
	term  *Terminal
	outer core.Rect
}

var _ core.Window = (*Window)(nil)

func (w *Window) border() {
	s := w.term.screen
	h, v := tcell.RuneHLine, tcell.RuneVLine
	corners := [4]rune{tcell.RuneULCorner, tcell.RuneURCorner, tcell.RuneLLCorner, tcell.RuneLRCorner}
	if !w.CanRender(h) {
		h, v = '-', '|'
		corners = [4]rune{'+', '+', '+', '+'}
	}

	r := w.outer
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetContent(x, r.Y, h, nil, tcell.StyleDefault)
		s.SetContent(x, r.Bottom()-1, h, nil, tcell.StyleDefault)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetContent(r.X, y, v, nil, tcell.StyleDefault)
		s.SetContent(r.Right()-1, y, v, nil, tcell.StyleDefault)
	}
	s.SetContent(r.X, r.Y, corners[0], nil, tcell.StyleDefault)
	s.SetContent(r.Right()-1, r.Y, corners[1], nil, tcell.StyleDefault)
	s.SetContent(r.X, r.Bottom()-1, corners[2], nil, tcell.StyleDefault)
	s.SetContent(r.Right()-1, r.Bottom()-1, corners[3], nil, tcell.StyleDefault)
}

// Size returns the area inside the border.
func (w *Window) Size() (rows, cols int) {
	return w.outer.H - 2, w.outer.W - 2
}

// Clear blanks the inside of the window.
func (w *Window) Clear() {
	rows, cols := w.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			w.SetCell(y, x, ' ', core.ColorDefault)
		}
	}
}

// DrawText writes text on one row, clipped to the window.
func (w *Window) DrawText(y, x int, text string) {
	for _, r := range text {
		w.SetCell(y, x, r, core.ColorDefault)
		x++
	}
}

// SetCell writes one rune; cells outside the window are ignored.
func (w *Window) SetCell(y, x int, r rune, c core.Color) {
	rows, cols := w.Size()
	if y < 0 || y >= rows || x < 0 || x >= cols {
		return
	}
	w.term.screen.SetContent(w.outer.X+1+x, w.outer.Y+1+y, r, nil, style(c))
}

// CanRender reports whether the screen can show r without substitution.
func (w *Window) CanRender(r rune) bool {
	return w.term.screen.CanDisplay(r, false)
}

// Refresh shows pending changes.
func (w *Window) Refresh() error {
	if w.term.isClosed() {
		return core.ErrClosed
	}
	w.term.screen.Show()
	return nil
}
