package menu

import (
	"strings"
	"unicode/utf8"

	"github.com/ThoseGrapefruits/pacman/internal/core"
)

// Input is a menu navigation event.
type Input uint8

const (
	InputUp Input = iota
	InputDown
	InputSelect
	InputBack
	InputQuit
)

// InputForKey maps a terminal key to a menu input.
func InputForKey(k core.Key) (Input, bool) {
	switch k.Code {
	case core.KeyUp:
		return InputUp, true
	case core.KeyDown:
		return InputDown, true
	case core.KeyEnter:
		return InputSelect, true
	case core.KeyEscape:
		return InputBack, true
	case core.KeyCtrlC, core.KeyF4, core.KeyClose:
		return InputQuit, true
	}
	return 0, false
}

// Navigator walks a Tree with a stack of open menus. Selecting a menu item
// pushes it, Back pops, and Back on the last open menu closes the navigator.
type Navigator struct {
	tree  *Tree
	stack []Handle
}

// NewNavigator returns a closed navigator over t.
func NewNavigator(t *Tree) *Navigator {
	return &Navigator{tree: t}
}

// Tree returns the tree being navigated.
func (n *Navigator) Tree() *Tree {
	return n.tree
}

// Open resets the stack to root.
func (n *Navigator) Open(root Handle) {
	n.stack = append(n.stack[:0], root)
}

// Close empties the stack.
func (n *Navigator) Close() {
	n.stack = n.stack[:0]
}

// Active reports whether a menu is open.
func (n *Navigator) Active() bool {
	return len(n.stack) > 0
}

// Current returns the menu on top of the stack.
func (n *Navigator) Current() (Handle, bool) {
	if len(n.stack) == 0 {
		return NoHandle, false
	}
	return n.stack[len(n.stack)-1], true
}

// Root returns the menu at the bottom of the stack.
func (n *Navigator) Root() (Handle, bool) {
	if len(n.stack) == 0 {
		return NoHandle, false
	}
	return n.stack[0], true
}

// Depth returns the number of open menus.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Apply handles one input. Selecting a leaf with an action closes the
// navigator and returns that action. Backing out of the last open menu
// closes it and returns ActionResume.
func (n *Navigator) Apply(in Input) Action {
	cur, ok := n.Current()
	if !ok {
		return ActionNone
	}

	switch in {
	case InputUp:
		n.tree.CursorUp(cur)
	case InputDown:
		n.tree.CursorDown(cur)
	case InputSelect:
		child, err := n.tree.Select(cur)
		if err != nil {
			return ActionNone
		}
		if n.tree.Kind(child).IsMenu() {
			n.stack = append(n.stack, child)
			return ActionNone
		}
		a := n.tree.Action(child)
		if a != ActionNone {
			n.Close()
		}
		return a
	case InputBack:
		n.stack = n.stack[:len(n.stack)-1]
		if len(n.stack) == 0 {
			return ActionResume
		}
	case InputQuit:
		n.Close()
		return ActionQuit
	}
	return ActionNone
}

// OpenSelection draws the current menu into win and reads keys from r until
// an action is chosen or the menu is closed. Read errors are returned as is.
func (n *Navigator) OpenSelection(r core.KeyReader, win core.Window) (Action, error) {
	for n.Active() {
		win.Clear()
		n.Draw(win)
		if err := win.Refresh(); err != nil {
			return ActionNone, err
		}

		key, err := r.ReadKey()
		if err != nil {
			return ActionNone, err
		}
		in, ok := InputForKey(key)
		if !ok {
			continue
		}
		if a := n.Apply(in); a != ActionNone {
			return a, nil
		}
	}
	return ActionResume, nil
}

const cursorMark = "> "

// Breadcrumb joins the titles from the root menu to the current one.
func (n *Navigator) Breadcrumb() string {
	cur, ok := n.Current()
	if !ok {
		return ""
	}
	var titles []string
	for h, ok := cur, true; ok; h, ok = n.tree.Parent(h) {
		titles = append(titles, n.tree.Title(h))
		if h == n.stack[0] {
			break
		}
	}
	for i, j := 0, len(titles)-1; i < j; i, j = i+1, j-1 {
		titles[i], titles[j] = titles[j], titles[i]
	}
	return strings.Join(titles, " > ")
}

// Draw renders the current menu as a box centered in w.
func (n *Navigator) Draw(w core.Window) {
	cur, ok := n.Current()
	if !ok {
		return
	}

	title := n.Breadcrumb()
	items := n.tree.Items(cur)
	lines := make([]string, len(items))
	width := utf8.RuneCountInString(title)
	for i, it := range items {
		prefix := "  "
		if i == n.tree.Index(cur) {
			prefix = cursorMark
		}
		lines[i] = prefix + n.tree.Label(it)
		width = max(width, utf8.RuneCountInString(lines[i]))
	}

	rows, cols := w.Size()
	boxW := width + 4
	boxH := len(lines) + 4
	top := max((rows-boxH)/2, 0)
	left := max((cols-boxW)/2, 0)

	border := boxRunes
	if !w.CanRender(boxRunes.h) {
		border = asciiBox
	}
	hline := strings.Repeat(string(border.h), boxW-2)
	w.DrawText(top, left, string(border.tl)+hline+string(border.tr))
	for y := top + 1; y < top+boxH-1; y++ {
		w.DrawText(y, left, string(border.v)+strings.Repeat(" ", boxW-2)+string(border.v))
	}
	w.DrawText(top+boxH-1, left, string(border.bl)+hline+string(border.br))

	w.DrawText(top+1, left+2, title)
	for i, line := range lines {
		w.DrawText(top+3+i, left+2, line)
	}
}

type frame struct {
	tl, tr, bl, br, h, v rune
}

var (
	boxRunes = frame{'┌', '┐', '└', '┘', '─', '│'}
	asciiBox = frame{'+', '+', '+', '+', '-', '|'}
)
