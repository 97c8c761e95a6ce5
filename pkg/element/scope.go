package element

import "github.com/go-vellum/vellum/pkg/value"

// Scope is an ordered named-value namespace associated with an element
// type, e.g. for constants the element exposes to markup.
type Scope struct {
	names  []string
	values map[string]value.Value
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{values: make(map[string]value.Value)}
}

// Define binds a name. Redefining a name overwrites its value but keeps its
// original position.
func (s *Scope) Define(name string, v value.Value) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = v
}

// Get returns the value bound to name.
func (s *Scope) Get(name string) (value.Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Names returns the bound names in definition order.
func (s *Scope) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
