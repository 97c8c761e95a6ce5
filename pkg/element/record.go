package element

import "sync/atomic"

// Record is a type-erased handle to one element instance.
//
// Records are small values meant to be copied freely; copies share the same
// underlying instance and reference count. The zero Record is invalid and
// must not be used.
//
// A record's payload may only be interpreted through the descriptor it was
// packed with. That invariant is established at construction ([Type.Pack])
// and relied upon, unchecked, by every erased operation.
type Record struct {
	inner *inner
}

type inner struct {
	table   *Table
	refs    atomic.Int64
	payload any
}

func newRecord(t *Table, payload any) Record {
	in := &inner{table: t, payload: payload}
	in.refs.Store(1)
	return Record{inner: in}
}

// Valid reports whether r refers to an instance.
func (r Record) Valid() bool {
	return r.inner != nil
}

// Type returns the descriptor of the record's element type.
func (r Record) Type() *Table {
	return r.inner.table
}

// Is reports whether the record is of the element type described by t.
// Descriptors are unique per type, so this is a pointer comparison.
func (r Record) Is(t *Table) bool {
	return r.inner != nil && r.inner.table == t
}

// Retain adds a reference to the underlying instance and returns r.
func (r Record) Retain() Record {
	r.inner.refs.Add(1)
	return r
}

// Release drops one reference. When the last reference is dropped the
// descriptor's destroy hook runs; the record and all its copies are then
// dead and must not be used again.
func (r Record) Release() {
	if r.inner.refs.Add(-1) == 0 {
		r.inner.table.drop(r)
	}
}

// Disposer is implemented by element payloads that must run cleanup when
// their record is destroyed. The descriptor's destroy hook invokes it once,
// after the reference count has reached zero.
type Disposer interface {
	Dispose()
}
