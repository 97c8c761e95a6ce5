package element

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-vellum/vellum/pkg/style"
	"github.com/go-vellum/vellum/pkg/value"
)

// Handle pairs one record with its descriptor and exposes the per-record
// operations behind a safe surface. The record/descriptor match is
// guaranteed at construction, so no method restates the precondition.
//
// Handles are ephemeral: create one for a call chain, never store it.
type Handle struct {
	rec   Record
	table *Table
}

// NewHandle wraps a record for descriptor access. The record must be valid.
func NewHandle(r Record) Handle {
	return Handle{rec: r, table: r.inner.table}
}

// Debug writes the payload's debug form to w.
func (h Handle) Debug(w io.Writer) error {
	return h.table.debug(h.rec, w)
}

// Repr returns the payload's user-facing text. Types without a custom
// representation get the generic "name(field: value, ...)" form built from
// the field descriptors.
func (h Handle) Repr() string {
	if h.table.repr != nil {
		return h.table.repr(h.rec)
	}
	var sb strings.Builder
	sb.WriteString(h.table.name)
	sb.WriteByte('(')
	first := true
	for id := range h.table.fields {
		f := &h.table.fields[id]
		v, ok := f.get(h.rec)
		if !ok {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%s: %s", f.name, v)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Clone returns a new, fully populated record with an independent
// ownership contribution and a logically equal payload.
func (h Handle) Clone() Record {
	return h.table.clone(h.rec)
}

// Hash returns the 128-bit content hash of the payload.
func (h Handle) Hash() Digest {
	return h.table.hash(h.rec)
}

// Field provides access to the operations of the field with the given id.
func (h Handle) Field(id uint8) (FieldHandle, bool) {
	if int(id) >= len(h.table.fields) {
		return FieldHandle{}, false
	}
	return FieldHandle{rec: h.rec, field: &h.table.fields[id]}, true
}

// VisitFields calls visitor for each field in id order until it returns
// false.
func (h Handle) VisitFields(visitor func(FieldHandle) bool) {
	for id := range h.table.fields {
		if !visitor(FieldHandle{rec: h.rec, field: &h.table.fields[id]}) {
			return
		}
	}
}

// Materialize writes the effective value of every settable field into the
// record, per [FieldHandle.Materialize].
func (h Handle) Materialize(chain style.Chain) {
	for id := range h.table.fields {
		h.table.fields[id].materialize(h.rec, chain)
	}
}

// PairHandle pairs two records of the same type with their shared
// descriptor, for comparisons.
type PairHandle struct {
	a, b  Record
	table *Table
}

// NewPairHandle wraps two records for comparison. It reports false when the
// records are of different element types.
func NewPairHandle(a, b Record) (PairHandle, bool) {
	if a.inner.table != b.inner.table {
		return PairHandle{}, false
	}
	return PairHandle{a: a, b: b, table: a.inner.table}, true
}

// Equal compares the two payloads. Types that opted into structural
// equality are compared directly; for all others the mandatory fallback
// walks the fields and compares each through its sub-table.
func (p PairHandle) Equal() bool {
	if p.table.eq != nil {
		return p.table.eq(p.a, p.b)
	}
	for id := range p.table.fields {
		if !p.table.fields[id].eq(p.a, p.b) {
			return false
		}
	}
	return true
}

// FieldEqual compares a single field between the two records.
func (p PairHandle) FieldEqual(id uint8) bool {
	if int(id) >= len(p.table.fields) {
		return false
	}
	return p.table.fields[id].eq(p.a, p.b)
}

// FieldHandle pairs one record with one of its field sub-tables.
type FieldHandle struct {
	rec   Record
	field *FieldTable
}

// Table returns the field's descriptor, for metadata access.
func (h FieldHandle) Table() *FieldTable {
	return h.field
}

// Has reports whether the field is set on the record. Always true for
// required fields; reflects current storage for settable or synthesized
// fields.
func (h FieldHandle) Has() bool {
	return h.field.has(h.rec)
}

// Get retrieves the field's value from the record alone.
func (h FieldHandle) Get() (value.Value, bool) {
	return h.field.get(h.rec)
}

// GetWithStyles retrieves the field's effective value: the record's own
// value if present, else the style chain's. For fold fields the result
// merges record and style contributions.
func (h FieldHandle) GetWithStyles(chain style.Chain) (value.Value, bool) {
	return h.field.getWithStyles(h.rec, chain)
}

// Materialize writes the effective value into the record if the field is
// currently absent (merging with styles for fold fields); otherwise it is a
// no-op. The caller must have exclusive access to the record.
func (h FieldHandle) Materialize(chain style.Chain) {
	h.field.materialize(h.rec, chain)
}

// Equal reports whether two records have logically equal payloads.
// It reports false when their element types differ.
func Equal(a, b Record) bool {
	p, ok := NewPairHandle(a, b)
	if !ok {
		return false
	}
	return p.Equal()
}

// Repr returns the user-facing text of a record.
func Repr(r Record) string {
	return NewHandle(r).Repr()
}

// ContentHash returns the 128-bit content hash of a record's payload.
func ContentHash(r Record) Digest {
	return NewHandle(r).Hash()
}

// Clone returns a new record sharing r's payload with its own ownership
// contribution.
func Clone(r Record) Record {
	return NewHandle(r).Clone()
}
