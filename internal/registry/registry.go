// Package registry provides a global registry of maze layouts.
// Layouts register themselves in init() functions, allowing the CLI and the
// config loader to look them up by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Layout is a named maze drawn as text rows.
//
//	#  wall
//	.  coin
//	o  big coin
//	P  player start
//	G  ghost start
//	   (space) empty floor
type Layout struct {
	ID    string
	Title string
	Rows  []string
}

var (
	layouts = make(map[string]Layout)
	mu      sync.RWMutex
)

// Register adds a layout to the registry.
// Typically called from an init() function.
// Panics if a layout with the same ID is already registered.
func Register(l Layout) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := layouts[l.ID]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", l.ID))
	}

	rows := make([]string, len(l.Rows))
	copy(rows, l.Rows)
	l.Rows = rows
	layouts[l.ID] = l
}

// List returns all registered layouts, sorted by ID.
func List() []Layout {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Layout, 0, len(layouts))
	for _, l := range layouts {
		result = append(result, l)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the layout registered under id.
// Returns an error if the layout ID is not registered.
func Get(id string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := layouts[id]
	if !ok {
		return Layout{}, fmt.Errorf("registry: unknown layout %q", id)
	}
	return l, nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := layouts[id]
	return ok
}
