package value

import "strings"

// TypeDesc describes the set of input types a field accepts. It is consumed
// by argument binding and documentation generation; the element model itself
// only stores and exposes it.
type TypeDesc struct {
	options []string
}

// Type returns a description accepting a single named type.
func Type(name string) TypeDesc {
	return TypeDesc{options: []string{name}}
}

// Union combines several descriptions into one accepting any of them.
// Duplicate names are kept once, in first-seen order.
func Union(descs ...TypeDesc) TypeDesc {
	var out TypeDesc
	seen := make(map[string]bool)
	for _, d := range descs {
		for _, name := range d.options {
			if !seen[name] {
				seen[name] = true
				out.options = append(out.options, name)
			}
		}
	}
	return out
}

// Options returns the accepted type names in declaration order.
func (d TypeDesc) Options() []string {
	out := make([]string, len(d.options))
	copy(out, d.options)
	return out
}

// String renders the description as "a | b | c".
func (d TypeDesc) String() string {
	if len(d.options) == 0 {
		return "none"
	}
	return strings.Join(d.options, " | ")
}
