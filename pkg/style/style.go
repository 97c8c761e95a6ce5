// Package style provides the layered configuration lookup consulted for
// field values absent on an element record.
//
// Resolution policy (which layers exist, where set rules come from) lives in
// the surrounding engine; this package only implements the lookup itself.
// Properties are keyed by an opaque comparable key plus a field id. The
// element model passes its descriptor pointer as the key, which makes the
// lookup reflection-free and collision-free without this package depending
// on it.
package style

import "github.com/go-vellum/vellum/pkg/value"

// Property is one set-rule entry: a value for one field of one element type.
type Property struct {
	key   any
	field uint8
	value value.Value
}

// Prop creates a property for the given key and field id.
func Prop(key any, field uint8, v value.Value) Property {
	return Property{key: key, field: field, value: v}
}

// Key returns the opaque element-type key.
func (p Property) Key() any { return p.key }

// Field returns the field id within the keyed element type.
func (p Property) Field() uint8 { return p.field }

// Value returns the configured value.
func (p Property) Value() value.Value { return p.value }

// Styles is an ordered list of properties, as produced by a set rule.
// Later entries shadow earlier ones within the same layer.
type Styles struct {
	props []Property
}

// Set appends a property to the list.
func (s *Styles) Set(p Property) {
	s.props = append(s.props, p)
}

// Properties returns the entries in insertion order.
// The returned slice must not be mutated.
func (s *Styles) Properties() []Property {
	return s.props
}

// Chain is an immutable linked chain of style layers, innermost layer first.
// The zero Chain is empty. Chains are cheap values meant to be passed by
// copy while descending a document tree.
type Chain struct {
	local *Styles
	outer *Chain
}

// New returns a chain consisting of a single root layer.
func New(root *Styles) Chain {
	return Chain{local: root}
}

// Push returns a new chain with local as the innermost layer on top of c.
func (c Chain) Push(local *Styles) Chain {
	outer := c
	return Chain{local: local, outer: &outer}
}

// Get returns the innermost value configured for (key, field).
func (c Chain) Get(key any, field uint8) (value.Value, bool) {
	if c.local != nil {
		props := c.local.props
		for i := len(props) - 1; i >= 0; i-- {
			if props[i].key == key && props[i].field == field {
				return props[i].value, true
			}
		}
	}
	if c.outer != nil {
		return c.outer.Get(key, field)
	}
	return value.None(), false
}

// Collect returns every value configured for (key, field), outermost first.
// Fold fields combine all contributions instead of taking the innermost.
func (c Chain) Collect(key any, field uint8) []value.Value {
	var out []value.Value
	if c.outer != nil {
		out = c.outer.Collect(key, field)
	}
	if c.local != nil {
		for _, p := range c.local.props {
			if p.key == key && p.field == field {
				out = append(out, p.value)
			}
		}
	}
	return out
}
