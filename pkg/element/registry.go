package element

import (
	"fmt"
	"sync"
)

// The global element registry maps element names to their descriptors. The
// front end resolves markup names through it and docgen walks it; the core
// itself never consults it.
var registry = struct {
	mu     sync.RWMutex
	byName map[string]*Table
	order  []*Table
}{
	byName: make(map[string]*Table),
}

// Register adds a descriptor to the global registry, typically from the
// defining package's init. Descriptors are static and unique per type, so
// registering a second table under an existing name is a programming defect
// and panics.
func Register(t *Table) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if existing, ok := registry.byName[t.name]; ok {
		if existing == t {
			return
		}
		panic(fmt.Sprintf("element: duplicate registration of %q", t.name))
	}
	registry.byName[t.name] = t
	registry.order = append(registry.order, t)
}

// Lookup resolves an element name to its descriptor.
func Lookup(name string) (*Table, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	t, ok := registry.byName[name]
	return t, ok
}

// All returns a snapshot of every registered descriptor in registration
// order.
func All() []*Table {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	out := make([]*Table, len(registry.order))
	copy(out, registry.order)
	return out
}
