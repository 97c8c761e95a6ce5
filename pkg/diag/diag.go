// Package diag provides structured diagnostics for the element model.
//
// Only element construction and set rules can fail; both validate
// user-supplied arguments and report problems as *Error values instead of
// aborting. Every other element-model operation is total.
package diag

import "fmt"

// Kind categorizes a diagnostic.
type Kind int

const (
	// KindUnknown indicates a diagnostic of unknown category.
	KindUnknown Kind = iota
	// KindArgument indicates a missing, superfluous, or malformed argument.
	KindArgument
	// KindConstruct indicates a failure in an element constructor.
	KindConstruct
	// KindSet indicates a failure in a set rule.
	KindSet
	// KindType indicates a value of an unexpected type.
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindConstruct:
		return "construct"
	case KindSet:
		return "set"
	case KindType:
		return "type"
	default:
		return "unknown"
	}
}

// Error is a structured diagnostic produced while building elements.
type Error struct {
	// Op is the operation that failed (e.g., "heading.construct").
	Op string
	// Kind categorizes the diagnostic.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a diagnostic with a formatted underlying message.
func Errorf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}
