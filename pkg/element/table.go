package element

import (
	"io"

	"github.com/go-vellum/vellum/pkg/engine"
	"github.com/go-vellum/vellum/pkg/style"
	"github.com/go-vellum/vellum/pkg/value"
)

// ConstructFunc builds a record from bound arguments.
type ConstructFunc func(*engine.Context, *Args) (Record, error)

// SetFunc builds the style properties of a set rule from bound arguments.
type SetFunc func(*engine.Context, *Args) (*style.Styles, error)

// Table is the erased descriptor of one element type: metadata, field
// sub-tables, and the type-specific operations, all behind a uniform shape.
//
// Exactly one Table exists per element type, created by [Definition.Erase]
// at package initialization and never mutated afterward. Concurrent reads
// need no synchronization. The table's address is the type's identity.
//
// The operation fields that take a Record assume the record was packed with
// this very table. They are unexported; external code reaches them through
// [Handle], [PairHandle], and [FieldHandle], which preserve that assumption
// by construction.
type Table struct {
	name     string
	title    string
	docs     string
	keywords []string

	fields  []FieldTable
	fieldID func(name string) (uint8, bool)

	construct  ConstructFunc
	set        SetFunc
	localName  func(Lang, Region) string // nil when not localized
	scope      func() *Scope
	capability func(*Capability) any

	// Per-record operations. drop runs on the whole record once its
	// reference count reached zero; clone returns a fully populated record;
	// the remaining four act on the payload only. eq and repr are nil when
	// the type did not opt in, in which case callers fall back to the
	// field-wise walk and the generic name(fields) form.
	drop  func(Record)
	clone func(Record) Record
	hash  func(Record) Digest
	debug func(Record, io.Writer) error
	eq    func(a, b Record) bool
	repr  func(Record) string

	store func() *LazyStore
}

// Name returns the element's name, as in markup.
func (t *Table) Name() string { return t.name }

// Title returns the element's title-cased name.
func (t *Table) Title() string { return t.title }

// Docs returns the element's documentation.
func (t *Table) Docs() string { return t.docs }

// Keywords returns search keywords for the documentation.
func (t *Table) Keywords() []string { return t.keywords }

// NumFields returns the number of fields the element declares.
func (t *Table) NumFields() int { return len(t.fields) }

// FieldByID returns the field sub-table at the given index.
func (t *Table) FieldByID(id uint8) (*FieldTable, bool) {
	if int(id) >= len(t.fields) {
		return nil, false
	}
	return &t.fields[id], true
}

// FieldID resolves a field name to its id.
func (t *Table) FieldID(name string) (uint8, bool) {
	return t.fieldID(name)
}

// Construct invokes the element's constructor with the given arguments.
func (t *Table) Construct(ctx *engine.Context, args *Args) (Record, error) {
	return t.construct(ctx, args)
}

// Set invokes the element's set rule, producing style properties.
func (t *Table) Set(ctx *engine.Context, args *Args) (*style.Styles, error) {
	return t.set(ctx, args)
}

// LocalName returns the element's display name for the given language and
// region. The second result is false when the type has no localized names.
func (t *Table) LocalName(lang Lang, region Region) (string, bool) {
	if t.localName == nil {
		return "", false
	}
	return t.localName(lang, region), true
}

// Scope returns the element's associated named-value scope.
func (t *Table) Scope() *Scope {
	return t.scope()
}

// Capability returns the type's implementation of the given capability, or
// nil if the type does not support it. The result is stable: descriptors are
// immutable, so repeated and concurrent lookups agree.
func (t *Table) Capability(c *Capability) any {
	if t.capability == nil {
		return nil
	}
	return t.capability(c)
}

// Store returns the type's lazily-initialized storage cell.
func (t *Table) Store() *LazyStore {
	return t.store()
}

// Prop creates a style property addressing the given field of this element
// type, for use in set rules.
func (t *Table) Prop(field uint8, v value.Value) style.Property {
	return style.Prop(t, field, v)
}
