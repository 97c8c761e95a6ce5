package element

import (
	"github.com/go-vellum/vellum/pkg/diag"
	"github.com/go-vellum/vellum/pkg/value"
)

// Args holds the arguments bound to one element constructor or set rule
// invocation. The front end fills it; constructors consume it and finish
// with [Args.Finish] so superfluous arguments are diagnosed.
//
// Args is not safe for concurrent use; each invocation gets its own.
type Args struct {
	op         string
	positional []value.Value
	named      map[string]value.Value
}

// NewArgs creates an argument list for the operation named op (used in
// diagnostics, e.g. "heading.construct").
func NewArgs(op string, positional ...value.Value) *Args {
	return &Args{op: op, positional: positional}
}

// AddNamed binds a named argument.
func (a *Args) AddNamed(name string, v value.Value) {
	if a.named == nil {
		a.named = make(map[string]value.Value)
	}
	a.named[name] = v
}

// Eat removes and returns the next positional argument, if any.
func (a *Args) Eat() (value.Value, bool) {
	if len(a.positional) == 0 {
		return value.None(), false
	}
	v := a.positional[0]
	a.positional = a.positional[1:]
	return v, true
}

// Expect removes and returns the next positional argument, or fails with an
// argument diagnostic naming what was missing.
func (a *Args) Expect(what string) (value.Value, error) {
	if v, ok := a.Eat(); ok {
		return v, nil
	}
	return value.None(), diag.Errorf(a.op, diag.KindArgument, "missing argument: %s", what)
}

// Named removes and returns the named argument, if bound.
func (a *Args) Named(name string) (value.Value, bool) {
	v, ok := a.named[name]
	if ok {
		delete(a.named, name)
	}
	return v, ok
}

// Finish fails with an argument diagnostic if any argument was left
// unconsumed.
func (a *Args) Finish() error {
	if len(a.positional) > 0 {
		return diag.Errorf(a.op, diag.KindArgument,
			"unexpected positional argument: %s", a.positional[0])
	}
	for name := range a.named {
		return diag.Errorf(a.op, diag.KindArgument, "unexpected argument: %s", name)
	}
	return nil
}
