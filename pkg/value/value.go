// Package value provides the dynamic value representation exchanged between
// the element model and its collaborators (argument binding, style rules,
// documentation generation).
//
// A Value is a small tagged union. It is immutable once created; List values
// share their backing slice, so callers must not mutate slices passed to
// NewList after construction.
package value

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant stored in a Value.
type Kind uint8

const (
	// KindNone is the absent value.
	KindNone Kind = iota
	// KindAuto defers the choice of a value to the consumer.
	KindAuto
	// KindBool is a boolean.
	KindBool
	// KindInt is a 64-bit signed integer.
	KindInt
	// KindFloat is a 64-bit float.
	KindFloat
	// KindStr is a string.
	KindStr
	// KindList is an ordered sequence of values.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAuto:
		return "auto"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is one dynamic value.
// The zero Value is None.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
}

// None returns the absent value.
func None() Value { return Value{kind: KindNone} }

// Auto returns the auto value.
func Auto() Value { return Value{kind: KindAuto} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str returns a string value.
func Str(s string) Value { return Value{kind: KindStr, s: s} }

// NewList returns a list value holding the given items.
func NewList(items ...Value) Value { return Value{kind: KindList, list: items} }

// Kind reports the variant stored in v.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v is the absent value.
func (v Value) IsNone() bool { return v.kind == KindNone }

// AsBool returns the boolean payload, if v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer payload, if v is an int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float payload, if v is a float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsStr returns the string payload, if v is a string.
func (v Value) AsStr() (string, bool) { return v.s, v.kind == KindStr }

// AsList returns the list payload, if v is a list.
// The returned slice must not be mutated.
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

// Equal reports structural equality between two values.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNone, KindAuto:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindStr:
		return a.s == b.s
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Fold combines an outer contribution with an inner one.
//
// Lists fold by concatenation with the outer items first, so that inner
// layers extend rather than shadow outer layers. For every other kind the
// inner value wins, matching plain style-chain shadowing.
func Fold(outer, inner Value) Value {
	if outer.kind == KindList && inner.kind == KindList {
		merged := make([]Value, 0, len(outer.list)+len(inner.list))
		merged = append(merged, outer.list...)
		merged = append(merged, inner.list...)
		return NewList(merged...)
	}
	return inner
}

// WriteHash writes a stable, address-independent encoding of v to w.
// Equal values produce identical encodings across processes.
func (v Value) WriteHash(w io.Writer) {
	var buf [8]byte
	w.Write([]byte{byte(v.kind)})
	switch v.kind {
	case KindBool:
		if v.b {
			w.Write([]byte{1})
		} else {
			w.Write([]byte{0})
		}
	case KindInt:
		binary.LittleEndian.PutUint64(buf[:], uint64(v.i))
		w.Write(buf[:])
	case KindFloat:
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.f))
		w.Write(buf[:])
	case KindStr:
		binary.LittleEndian.PutUint64(buf[:], uint64(len(v.s)))
		w.Write(buf[:])
		io.WriteString(w, v.s)
	case KindList:
		binary.LittleEndian.PutUint64(buf[:], uint64(len(v.list)))
		w.Write(buf[:])
		for _, item := range v.list {
			item.WriteHash(w)
		}
	}
}

// String renders v in source-like form.
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "none"
	case KindAuto:
		return "auto"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindStr:
		return strconv.Quote(v.s)
	case KindList:
		var sb strings.Builder
		sb.WriteByte('(')
		for i, item := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(item.String())
		}
		sb.WriteByte(')')
		return sb.String()
	default:
		return fmt.Sprintf("<invalid kind %d>", v.kind)
	}
}
