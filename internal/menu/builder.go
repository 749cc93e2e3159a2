package menu

import "fmt"

// Builder assembles a menu node. Setters return the builder so calls chain;
// validation happens in Build.
type Builder struct {
	index     int
	title     string
	items     []Handle
	kind      Kind
	parent    Handle
	hasParent bool
}

// NewBuilder returns a builder for a main menu.
func NewBuilder() (*Builder, error) {
	return NewBuilderOfKind(KindMainMenu)
}

// NewBuilderOfKind returns a builder for the given menu kind. String is a
// leaf, not a menu, and is rejected with ErrLeafKind.
func NewBuilderOfKind(kind Kind) (*Builder, error) {
	if !kind.IsMenu() {
		return nil, ErrLeafKind
	}
	return &Builder{kind: kind, parent: NoHandle}, nil
}

func (b *Builder) Index(i int) *Builder {
	b.index = i
	return b
}

func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

// Items appends item handles in display order.
func (b *Builder) Items(items ...Handle) *Builder {
	b.items = append(b.items, items...)
	return b
}

func (b *Builder) Kind(kind Kind) *Builder {
	b.kind = kind
	return b
}

func (b *Builder) Parent(h Handle) *Builder {
	b.parent = h
	b.hasParent = true
	return b
}

// Build validates the builder and stores the menu in t. A submenu is appended
// to its parent's items; a pause menu only links back to its parent.
func (b *Builder) Build(t *Tree) (Handle, error) {
	if !b.kind.IsMenu() {
		return NoHandle, ErrLeafKind
	}
	if b.title == "" {
		return NoHandle, ErrEmptyTitle
	}
	if b.index < 0 || (len(b.items) == 0 && b.index != 0) || (len(b.items) > 0 && b.index >= len(b.items)) {
		return NoHandle, fmt.Errorf("%w: %d of %d", ErrIndexRange, b.index, len(b.items))
	}
	for _, it := range b.items {
		if !t.Valid(it) {
			return NoHandle, fmt.Errorf("%w: item %d", ErrUnknownHandle, it)
		}
	}

	needsParent := b.kind == KindSubMenu || b.kind == KindPauseMenu
	if needsParent && !b.hasParent {
		return NoHandle, ErrNoParent
	}
	if b.hasParent {
		if !t.Valid(b.parent) {
			return NoHandle, fmt.Errorf("%w: parent %d", ErrUnknownHandle, b.parent)
		}
		if !t.Kind(b.parent).IsMenu() {
			return NoHandle, fmt.Errorf("%w: parent %d is a %s", ErrNoParent, b.parent, t.Kind(b.parent))
		}
	}

	h := t.add(node{
		kind:      b.kind,
		title:     b.title,
		index:     b.index,
		items:     append([]Handle(nil), b.items...),
		parent:    b.parent,
		hasParent: b.hasParent,
	})
	if b.kind == KindSubMenu {
		p, _ := t.get(b.parent)
		p.items = append(p.items, h)
	}
	return h, nil
}
