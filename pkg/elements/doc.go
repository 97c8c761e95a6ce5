// Package elements provides the built-in document element types.
//
// Each type is a plain struct with a static descriptor built through
// [github.com/go-vellum/vellum/pkg/element.Define] and registered globally
// at package initialization. The package uses only the public element-model
// API; custom element packages follow the same shape.
package elements
