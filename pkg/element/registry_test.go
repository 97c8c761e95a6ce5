package element

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := require.New(t)

	Register(noteElem)
	Register(ruleElem)

	got, ok := Lookup("note")
	r.True(ok)
	r.Same(noteElem, got)

	_, ok = Lookup("absent")
	r.False(ok)

	all := All()
	r.Contains(all, noteElem)
	r.Contains(all, ruleElem)
}

func TestRegisterIdempotent(t *testing.T) {
	r := require.New(t)

	Register(noteElem)
	before := len(All())
	// Re-registering the same table is a no-op.
	Register(noteElem)
	r.Len(All(), before)
}

func TestRegisterDuplicateNamePanics(t *testing.T) {
	r := require.New(t)

	type clash struct{}
	first := Define[clash]("clash", "Clash", "", nil, nil, nil, nil).Erase()
	second := Define[clash]("clash", "Clash", "", nil, nil, nil, nil).Erase()

	Register(first.Table())
	r.Panics(func() {
		Register(second.Table())
	})
}
