package element

// Capability identifies an optional, type-specific interface an element may
// implement. Tokens are compared by address, so each capability must be a
// single package-level variable:
//
//	var Locatable = element.NewCapability("locatable")
//
// A type's answer to a capability is fixed at definition time; see
// [Table.Capability].
type Capability struct {
	name string
}

// NewCapability creates a capability token with the given diagnostic name.
func NewCapability(name string) *Capability {
	return &Capability{name: name}
}

// Name returns the capability's diagnostic name.
func (c *Capability) Name() string {
	return c.name
}

// CapabilityMap builds a capability resolver from a fixed token-to-
// implementation mapping, for use with [Define]. The map must not be
// mutated afterward.
func CapabilityMap(impls map[*Capability]any) func(*Capability) any {
	return func(c *Capability) any {
		return impls[c]
	}
}
