package element

import (
	"fmt"
	"hash/fnv"
	"io"

	"github.com/go-vellum/vellum/pkg/diag"
	"github.com/go-vellum/vellum/pkg/engine"
	"github.com/go-vellum/vellum/pkg/style"
)

// Definition is the type-specialized descriptor of the element type E,
// under construction. It is converted into its erased form exactly once by
// [Definition.Erase]; the erased [Table] is what the rest of the engine
// sees.
type Definition[E any] struct {
	name     string
	title    string
	docs     string
	keywords []string

	fields  []FieldDef[E]
	fieldID func(name string) (uint8, bool)

	construct  ConstructFunc
	set        SetFunc
	localName  func(Lang, Region) string
	scope      func() *Scope
	capability func(*Capability) any
	store      func() *LazyStore

	eq   func(a, b *E) bool
	repr func(e *E) string
}

// Define starts the descriptor for the element type E.
//
// fieldID resolves field names to ids; when nil, a linear search over the
// field names is installed. capability answers capability lookups and may be
// nil. store returns the type's lazy storage cell; when nil, a private cell
// is allocated. Optional behavior (keywords, construction, set rules,
// equality, repr, localized names, a custom scope) is attached through the
// With-modifiers before calling [Definition.Erase].
func Define[E any](
	name, title, docs string,
	fields []FieldDef[E],
	fieldID func(name string) (uint8, bool),
	capability func(*Capability) any,
	store func() *LazyStore,
) *Definition[E] {
	return &Definition[E]{
		name:       name,
		title:      title,
		docs:       docs,
		fields:     fields,
		fieldID:    fieldID,
		capability: capability,
		store:      store,
	}
}

// WithKeywords attaches search keywords for the documentation.
func (d *Definition[E]) WithKeywords(keywords ...string) *Definition[E] {
	d.keywords = keywords
	return d
}

// WithConstruct attaches the element's constructor.
func (d *Definition[E]) WithConstruct(construct ConstructFunc) *Definition[E] {
	d.construct = construct
	return d
}

// WithSet attaches the element's set rule.
func (d *Definition[E]) WithSet(set SetFunc) *Definition[E] {
	d.set = set
	return d
}

// WithEq opts into structural equality. Without it, comparisons fall back
// to the field-wise walk.
func (d *Definition[E]) WithEq(eq func(a, b *E) bool) *Definition[E] {
	d.eq = eq
	return d
}

// WithRepr opts into a custom user-facing representation. Without it, the
// generic name(fields) form is produced.
func (d *Definition[E]) WithRepr(repr func(e *E) string) *Definition[E] {
	d.repr = repr
	return d
}

// WithLocalName opts into localized display names.
func (d *Definition[E]) WithLocalName(localName func(Lang, Region) string) *Definition[E] {
	d.localName = localName
	return d
}

// WithScope opts into a custom associated scope.
func (d *Definition[E]) WithScope(scope func() *Scope) *Definition[E] {
	d.scope = scope
	return d
}

// Erase converts the definition into its uniform erased form.
//
// Call it once per element type, when defining the type's package-level
// descriptor variable. Every typed operation is wrapped in an adapter that
// reinterprets the record payload as *E without checking; [Type.Pack] is
// the only way payloads enter records, which ties each record to this very
// table and makes the reinterpretation sound.
func (d *Definition[E]) Erase() Type[E] {
	t := &Table{
		name:       d.name,
		title:      d.title,
		docs:       d.docs,
		keywords:   d.keywords,
		capability: d.capability,
	}

	payload := func(r Record) *E {
		return r.inner.payload.(*E)
	}

	t.fieldID = d.fieldID
	if t.fieldID == nil {
		fields := d.fields
		t.fieldID = func(name string) (uint8, bool) {
			for i := range fields {
				if fields[i].Name == name {
					return uint8(i), true
				}
			}
			return 0, false
		}
	}

	t.construct = d.construct
	if t.construct == nil {
		name := d.name
		t.construct = func(*engine.Context, *Args) (Record, error) {
			return Record{}, diag.Errorf(name+".construct", diag.KindConstruct,
				"element %s cannot be constructed directly", name)
		}
	}

	t.set = d.set
	if t.set == nil {
		t.set = func(*engine.Context, *Args) (*style.Styles, error) {
			return &style.Styles{}, nil
		}
	}

	t.localName = d.localName

	t.scope = d.scope
	if t.scope == nil {
		t.scope = func() *Scope { return NewScope() }
	}

	t.store = d.store
	if t.store == nil {
		cell := new(LazyStore)
		t.store = func() *LazyStore { return cell }
	}

	t.fields = make([]FieldTable, len(d.fields))
	for i := range d.fields {
		t.fields[i] = eraseField(t, uint8(i), d.fields[i])
	}

	t.drop = func(r Record) {
		e := payload(r)
		if disposer, ok := any(e).(Disposer); ok {
			disposer.Dispose()
		}
		r.inner.payload = nil
	}

	t.clone = func(r Record) Record {
		return r.Retain()
	}

	t.hash = func(r Record) Digest {
		e := payload(r)
		h := fnv.New128a()
		io.WriteString(h, t.name)
		for i := range d.fields {
			if v, ok := d.fields[i].Get(e); ok {
				h.Write([]byte{uint8(i)})
				v.WriteHash(h)
			}
		}
		var out Digest
		h.Sum(out[:0])
		return out
	}

	t.debug = func(r Record, w io.Writer) error {
		e := payload(r)
		if _, err := io.WriteString(w, t.name+"{"); err != nil {
			return err
		}
		first := true
		for i := range d.fields {
			v, ok := d.fields[i].Get(e)
			if !ok {
				continue
			}
			sep := ", "
			if first {
				sep = ""
				first = false
			}
			if _, err := fmt.Fprintf(w, "%s%s: %s", sep, d.fields[i].Name, v); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "}")
		return err
	}

	if d.eq != nil {
		eq := d.eq
		t.eq = func(a, b Record) bool {
			return eq(payload(a), payload(b))
		}
	}

	if d.repr != nil {
		repr := d.repr
		t.repr = func(r Record) string {
			return repr(payload(r))
		}
	}

	return Type[E]{table: t}
}

// Type is the typed facade over an erased [Table]. It is the only producer
// of records for E, which is what pins every record to its matching
// descriptor.
type Type[E any] struct {
	table *Table
}

// Table returns the erased descriptor.
func (t Type[E]) Table() *Table {
	return t.table
}

// Pack wraps a payload into a fresh record with one reference.
func (t Type[E]) Pack(e *E) Record {
	return newRecord(t.table, e)
}

// Unpack returns the typed payload of a record of this type. It reports
// false for records of any other type.
func (t Type[E]) Unpack(r Record) (*E, bool) {
	if !r.Is(t.table) {
		return nil, false
	}
	return r.inner.payload.(*E), true
}
