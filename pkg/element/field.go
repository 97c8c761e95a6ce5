package element

import (
	"github.com/go-vellum/vellum/pkg/style"
	"github.com/go-vellum/vellum/pkg/value"
)

// FieldTable is the erased descriptor of one field of one element type:
// metadata plus the field-specific operations.
//
// Like its parent [Table], a FieldTable is static, immutable, and valid for
// exactly one element type. The record-taking operations assume a matching
// record and are reached through [FieldHandle].
type FieldTable struct {
	name string
	docs string

	positional  bool
	variadic    bool
	required    bool
	settable    bool
	synthesized bool
	foldable    bool

	input        func() value.TypeDesc
	defaultValue func() value.Value // nil when the field has no default

	has           func(Record) bool
	get           func(Record) (value.Value, bool)
	getWithStyles func(Record, style.Chain) (value.Value, bool)
	getFromStyles func(style.Chain) (value.Value, bool)
	materialize   func(Record, style.Chain)
	eq            func(a, b Record) bool
}

// Name returns the field's name, as in code.
func (f *FieldTable) Name() string { return f.name }

// Docs returns the field's documentation.
func (f *FieldTable) Docs() string { return f.docs }

// Positional reports whether the field's parameter is positional.
func (f *FieldTable) Positional() bool { return f.positional }

// Variadic reports whether the field's parameter is variadic.
func (f *FieldTable) Variadic() bool { return f.variadic }

// Required reports whether the field's parameter is required.
func (f *FieldTable) Required() bool { return f.required }

// Settable reports whether the field can be set via a set rule.
func (f *FieldTable) Settable() bool { return f.settable }

// Synthesized reports whether the field is produced by the engine rather
// than the user, and hence initially absent.
func (f *FieldTable) Synthesized() bool { return f.synthesized }

// Foldable reports whether the field's effective value combines
// contributions from multiple style layers instead of shadowing them.
func (f *FieldTable) Foldable() bool { return f.foldable }

// Input describes the types the field's parameter accepts.
func (f *FieldTable) Input() value.TypeDesc { return f.input() }

// Default returns the field's default value, if it has one.
func (f *FieldTable) Default() (value.Value, bool) {
	if f.defaultValue == nil {
		return value.None(), false
	}
	return f.defaultValue(), true
}

// GetFromStyles retrieves the field's value from the style chain alone,
// with no record involved. Fold fields combine all layer contributions.
func (f *FieldTable) GetFromStyles(chain style.Chain) (value.Value, bool) {
	return f.getFromStyles(chain)
}

// FieldDef declares one field of the element type E for [Define].
//
// Only the typed accessors vary per field; presence, style interaction, and
// equality are derived from them during erasure. Get must report false while
// the field is unset; Set must record the value and mark it set. Eq may be
// nil, in which case values retrieved via Get are compared structurally.
type FieldDef[E any] struct {
	// Name is the field's name, as in code.
	Name string
	// Docs is the field's documentation.
	Docs string

	// Positional marks the field's parameter as positional.
	Positional bool
	// Variadic marks the field's parameter as variadic.
	Variadic bool
	// Required marks the field's parameter as required.
	Required bool
	// Settable marks the field as configurable via set rules.
	Settable bool
	// Synthesized marks the field as engine-produced and initially absent.
	Synthesized bool
	// Foldable marks the field's value as folding across style layers.
	Foldable bool

	// Input describes the accepted parameter types.
	Input func() value.TypeDesc
	// Default produces the field's default value. Nil for fields without
	// one, e.g. required parameters.
	Default func() value.Value

	// Get retrieves the field's current value, reporting absence.
	Get func(e *E) (value.Value, bool)
	// Set writes a value into the field. Nil for fields that are never
	// written from styles (non-settable, non-synthesized fields).
	Set func(e *E, v value.Value)
	// Eq compares the field between two instances. Optional.
	Eq func(a, b *E) bool
}

// eraseField builds the erased sub-table for field id of the element type
// whose descriptor is table. The unchecked payload reinterpretation noted on
// [Type.Pack] happens inside the closures created here.
func eraseField[E any](table *Table, id uint8, fd FieldDef[E]) FieldTable {
	payload := func(r Record) *E {
		return r.inner.payload.(*E)
	}
	get := func(r Record) (value.Value, bool) {
		return fd.Get(payload(r))
	}
	getFromStyles := func(chain style.Chain) (value.Value, bool) {
		if !fd.Foldable {
			return chain.Get(table, id)
		}
		contributions := chain.Collect(table, id)
		return foldAll(contributions)
	}

	ft := FieldTable{
		name:        fd.Name,
		docs:        fd.Docs,
		positional:  fd.Positional,
		variadic:    fd.Variadic,
		required:    fd.Required,
		settable:    fd.Settable,
		synthesized: fd.Synthesized,
		foldable:    fd.Foldable,

		input:         fd.Input,
		defaultValue:  fd.Default,
		get:           get,
		getFromStyles: getFromStyles,
	}

	ft.has = func(r Record) bool {
		if fd.Required {
			return true
		}
		_, ok := fd.Get(payload(r))
		return ok
	}

	ft.getWithStyles = func(r Record, chain style.Chain) (value.Value, bool) {
		if !fd.Foldable {
			if v, ok := get(r); ok {
				return v, true
			}
			return chain.Get(table, id)
		}
		contributions := chain.Collect(table, id)
		if v, ok := get(r); ok {
			contributions = append(contributions, v)
		}
		return foldAll(contributions)
	}

	ft.materialize = func(r Record, chain style.Chain) {
		if fd.Set == nil {
			return
		}
		e := payload(r)
		if fd.Foldable {
			contributions := chain.Collect(table, id)
			if v, ok := fd.Get(e); ok {
				contributions = append(contributions, v)
			}
			if folded, ok := foldAll(contributions); ok {
				fd.Set(e, folded)
			} else if fd.Default != nil {
				fd.Set(e, fd.Default())
			}
			return
		}
		if _, ok := fd.Get(e); ok {
			return
		}
		if v, ok := chain.Get(table, id); ok {
			fd.Set(e, v)
		} else if fd.Default != nil {
			fd.Set(e, fd.Default())
		}
	}

	ft.eq = func(a, b Record) bool {
		if fd.Eq != nil {
			return fd.Eq(payload(a), payload(b))
		}
		av, aok := fd.Get(payload(a))
		bv, bok := fd.Get(payload(b))
		if aok != bok {
			return false
		}
		return !aok || value.Equal(av, bv)
	}

	return ft
}

// foldAll folds contributions outermost-first into one effective value.
func foldAll(contributions []value.Value) (value.Value, bool) {
	if len(contributions) == 0 {
		return value.None(), false
	}
	acc := contributions[0]
	for _, v := range contributions[1:] {
		acc = value.Fold(acc, v)
	}
	return acc, true
}
