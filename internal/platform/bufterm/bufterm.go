// Package bufterm implements core.Terminal on an in-memory cell buffer.
//
// Keys are fed through Send and read back by ReadKey; every window Refresh
// hands a copy of the buffer to an optional renderer. Tests drive the game
// through it directly, and the Bubble Tea frontend renders its frames.
package bufterm

import (
	"fmt"
	"sync"

	"github.com/ThoseGrapefruits/pacman/internal/core"
)

// Renderer receives a snapshot of the whole terminal after each Refresh.
type Renderer func(frame *core.Screen)

// Option configures a Terminal.
type Option func(*Terminal)

// WithUnicode sets whether windows report non-ASCII glyphs as renderable.
func WithUnicode(on bool) Option {
	return func(t *Terminal) { t.unicode = on }
}

// WithRenderer installs a frame callback. It runs on the refreshing goroutine
// with the terminal lock released.
func WithRenderer(r Renderer) Option {
	return func(t *Terminal) { t.render = r }
}

// WithKeyBuffer sets how many keys Send may queue before blocking.
func WithKeyBuffer(n int) Option {
	return func(t *Terminal) { t.keyBuf = n }
}

// Terminal is an in-memory terminal.
type Terminal struct {
	mu        sync.Mutex
	screen    *core.Screen
	windows   map[*Window]struct{}
	refreshes int
	unicode   bool
	render    Renderer
	keyBuf    int

	keys      chan core.Key
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a terminal of rows x cols cells.
func New(rows, cols int, opts ...Option) *Terminal {
	t := &Terminal{
		screen:  core.NewScreen(cols, rows),
		windows: make(map[*Window]struct{}),
		unicode: true,
		keyBuf:  64,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.keys = make(chan core.Key, t.keyBuf)
	return t
}

// Send queues a key for ReadKey. It blocks while the key buffer is full and
// fails with core.ErrClosed once the terminal is closed.
func (t *Terminal) Send(k core.Key) error {
	select {
	case <-t.done:
		return core.ErrClosed
	default:
	}
	select {
	case t.keys <- k:
		return nil
	case <-t.done:
		return core.ErrClosed
	}
}

// SendKeys sends each key in order, stopping at the first error.
func (t *Terminal) SendKeys(keys ...core.Key) error {
	for _, k := range keys {
		if err := t.Send(k); err != nil {
			return err
		}
	}
	return nil
}

// ReadKey blocks until a key is sent or the terminal is closed.
func (t *Terminal) ReadKey() (core.Key, error) {
	select {
	case k := <-t.keys:
		return k, nil
	case <-t.done:
		return core.Key{}, core.ErrClosed
	}
}

// MaxBounds returns the terminal size.
func (t *Terminal) MaxBounds() (rows, cols int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Height(), t.screen.Width()
}

// Resize changes the terminal size. Existing windows keep their geometry.
func (t *Terminal) Resize(rows, cols int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Resize(cols, rows)
}

// CreateWindow creates a bordered window. Drawing coordinates are relative to
// the area inside the border.
func (t *Terminal) CreateWindow(rows, cols, originY, originX int) (core.Window, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	select {
	case <-t.done:
		return nil, core.ErrClosed
	default:
	}

	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("bufterm: window %dx%d is too small for a border", cols, rows)
	}
	if originY < 0 || originX < 0 || originY+rows > t.screen.Height() || originX+cols > t.screen.Width() {
		return nil, fmt.Errorf("bufterm: window %dx%d at (%d, %d) does not fit in %dx%d",
			cols, rows, originX, originY, t.screen.Width(), t.screen.Height())
	}

	w := &Window{term: t, outer: core.NewRect(originX, originY, cols, rows)}
	t.windows[w] = struct{}{}
	t.drawBorder(w.outer)
	return w, nil
}

// DestroyWindow erases the window and its border.
func (t *Terminal) DestroyWindow(cw core.Window) {
	w, ok := cw.(*Window)
	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.windows[w]; !ok {
		return
	}
	delete(t.windows, w)
	t.screen.Fill(w.outer, ' ')
}

func (t *Terminal) drawBorder(r core.Rect) {
	box := core.BoxASCII
	if t.unicode {
		box = core.BoxLight
	}
	t.screen.DrawBox(r, box)
}

// Close unblocks pending and future ReadKey calls. It is safe to call twice.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() { close(t.done) })
	return nil
}

// Done is closed when the terminal is closed.
func (t *Terminal) Done() <-chan struct{} {
	return t.done
}

// String returns the plain-text contents of the terminal.
func (t *Terminal) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.String()
}

// Row returns one row of the terminal as text.
func (t *Terminal) Row(y int) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Row(y)
}

// Cell returns the cell at terminal coordinates (x, y).
func (t *Terminal) Cell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.GetCell(x, y)
}

// Refreshes counts window refreshes so far.
func (t *Terminal) Refreshes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.refreshes
}

func (t *Terminal) snapshot() *core.Screen {
	return t.screen.Clone()
}

// Window is a bordered region of a Terminal.
type Window struct {
	term  *Terminal
	outer core.Rect
}

var _ core.Window = (*Window)(nil)

// Size returns the drawable area inside the border.
func (w *Window) Size() (rows, cols int) {
	return w.outer.H - 2, w.outer.W - 2
}

func (w *Window) inside(y, x int) bool {
	rows, cols := w.Size()
	return y >= 0 && y < rows && x >= 0 && x < cols
}

// Clear blanks the area inside the border.
func (w *Window) Clear() {
	w.term.mu.Lock()
	defer w.term.mu.Unlock()
	rows, cols := w.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			w.term.screen.Set(w.outer.X+1+x, w.outer.Y+1+y, ' ')
		}
	}
}

// DrawText writes text starting at (y, x), clipped to the window.
func (w *Window) DrawText(y, x int, text string) {
	w.term.mu.Lock()
	defer w.term.mu.Unlock()
	i := 0
	for _, r := range text {
		if w.inside(y, x+i) {
			w.term.screen.Set(w.outer.X+1+x+i, w.outer.Y+1+y, r)
		}
		i++
	}
}

// SetCell writes one colored rune, ignoring cells outside the window.
func (w *Window) SetCell(y, x int, r rune, c core.Color) {
	if !w.inside(y, x) {
		return
	}
	w.term.mu.Lock()
	defer w.term.mu.Unlock()
	w.term.screen.SetCell(w.outer.X+1+x, w.outer.Y+1+y, r, c)
}

// CanRender reports whether the terminal displays r.
func (w *Window) CanRender(r rune) bool {
	return w.term.unicode || r < 0x80
}

// Refresh publishes the terminal contents to the renderer.
func (w *Window) Refresh() error {
	t := w.term
	t.mu.Lock()
	select {
	case <-t.done:
		t.mu.Unlock()
		return core.ErrClosed
	default:
	}
	t.refreshes++
	var frame *core.Screen
	if t.render != nil {
		frame = t.snapshot()
	}
	t.mu.Unlock()

	if frame != nil {
		t.render(frame)
	}
	return nil
}
