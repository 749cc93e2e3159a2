// Package menu implements the overlay menus as a tree of nodes stored in an
// arena. Nodes are addressed by Handle, parents are optional handles, and the
// cursor of every menu node wraps around its items.
package menu

import (
	"errors"
	"fmt"
)

// Kind distinguishes leaves from the three menu variants.
type Kind uint8

const (
	KindString Kind = iota
	KindSubMenu
	KindMainMenu
	KindPauseMenu
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindSubMenu:
		return "submenu"
	case KindMainMenu:
		return "main"
	case KindPauseMenu:
		return "pause"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// IsMenu reports whether nodes of this kind hold items.
func (k Kind) IsMenu() bool {
	return k == KindSubMenu || k == KindMainMenu || k == KindPauseMenu
}

// Action is what selecting a leaf asks the game to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionResume
	ActionRestart
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionResume:
		return "resume"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// Handle addresses a node in a Tree.
type Handle int32

// NoHandle is never a valid node.
const NoHandle Handle = -1

var (
	ErrLeafKind      = errors.New("menu: string nodes cannot be built as menus")
	ErrEmptyTitle    = errors.New("menu: title is empty")
	ErrIndexRange    = errors.New("menu: cursor index out of range")
	ErrNoParent      = errors.New("menu: submenu and pause menu need a parent")
	ErrUnknownHandle = errors.New("menu: unknown handle")
	ErrNoItems       = errors.New("menu: menu has no items")
)

type node struct {
	kind      Kind
	title     string
	action    Action
	index     int
	items     []Handle
	parent    Handle
	hasParent bool
}

// Tree is the arena holding every menu node of a game.
type Tree struct {
	nodes []node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) add(n node) Handle {
	t.nodes = append(t.nodes, n)
	return Handle(len(t.nodes) - 1)
}

func (t *Tree) get(h Handle) (*node, bool) {
	if h < 0 || int(h) >= len(t.nodes) {
		return nil, false
	}
	return &t.nodes[h], true
}

// Valid reports whether h addresses a node of t.
func (t *Tree) Valid(h Handle) bool {
	_, ok := t.get(h)
	return ok
}

// Leaf adds a selectable string item.
func (t *Tree) Leaf(label string, action Action) Handle {
	return t.add(node{kind: KindString, title: label, action: action})
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// CursorUp moves the cursor of menu h up one item, wrapping from the first
// item to the last. Leaves and empty menus are left alone.
func (t *Tree) CursorUp(h Handle) {
	n, ok := t.get(h)
	if !ok || len(n.items) == 0 {
		return
	}
	if n.index == 0 {
		n.index = len(n.items) - 1
		return
	}
	n.index--
}

// CursorDown moves the cursor of menu h down one item, wrapping from the last
// item to the first.
func (t *Tree) CursorDown(h Handle) {
	n, ok := t.get(h)
	if !ok || len(n.items) == 0 {
		return
	}
	n.index = (n.index + 1) % len(n.items)
}

// AddItem appends item to the end of menu h.
func (t *Tree) AddItem(h, item Handle) error {
	if !t.Valid(item) {
		return fmt.Errorf("%w: item %d", ErrUnknownHandle, item)
	}
	n, ok := t.get(h)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	if !n.kind.IsMenu() {
		return fmt.Errorf("%w: %d is a leaf", ErrLeafKind, h)
	}
	n.items = append(n.items, item)
	return nil
}

// Select returns the item under the cursor of menu h. The tree is not changed.
func (t *Tree) Select(h Handle) (Handle, error) {
	n, ok := t.get(h)
	if !ok {
		return NoHandle, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	if len(n.items) == 0 {
		return NoHandle, ErrNoItems
	}
	return n.items[n.index], nil
}

// Parent returns the menu h links back to, if any.
func (t *Tree) Parent(h Handle) (Handle, bool) {
	n, ok := t.get(h)
	if !ok || !n.hasParent {
		return NoHandle, false
	}
	return n.parent, true
}

// Title returns a menu's title or a leaf's label.
func (t *Tree) Title(h Handle) string {
	n, ok := t.get(h)
	if !ok {
		return ""
	}
	return n.title
}

// Label is the text shown for h as an item of its parent.
func (t *Tree) Label(h Handle) string {
	return t.Title(h)
}

// Items returns a copy of a menu's item handles.
func (t *Tree) Items(h Handle) []Handle {
	n, ok := t.get(h)
	if !ok {
		return nil
	}
	return append([]Handle(nil), n.items...)
}

// Index returns the cursor position of a menu.
func (t *Tree) Index(h Handle) int {
	n, ok := t.get(h)
	if !ok {
		return 0
	}
	return n.index
}

// SetIndex moves the cursor of menu h to i.
func (t *Tree) SetIndex(h Handle, i int) error {
	n, ok := t.get(h)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	if i < 0 || (len(n.items) > 0 && i >= len(n.items)) || (len(n.items) == 0 && i != 0) {
		return fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(n.items))
	}
	n.index = i
	return nil
}

// Kind returns the node's kind.
func (t *Tree) Kind(h Handle) Kind {
	n, ok := t.get(h)
	if !ok {
		return KindString
	}
	return n.kind
}

// Action returns the action of a leaf. Menus carry ActionNone.
func (t *Tree) Action(h Handle) Action {
	n, ok := t.get(h)
	if !ok {
		return ActionNone
	}
	return n.action
}
