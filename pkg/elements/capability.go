package elements

import "github.com/go-vellum/vellum/pkg/element"

// Locatable marks element types that can serve as link anchors.
var Locatable = element.NewCapability("locatable")

// Synthesize marks element types whose synthesized fields the engine fills
// in before layout. No built-in type implements it yet; it exists for
// custom element packages.
var Synthesize = element.NewCapability("synthesize")

// Locator is the interface behind [Locatable]: it derives a stable anchor
// name from a record of the implementing type.
type Locator interface {
	Anchor(r element.Record) string
}
