package element

import (
	"sync/atomic"

	"github.com/go-vellum/vellum/pkg/diag"
	"github.com/go-vellum/vellum/pkg/engine"
	"github.com/go-vellum/vellum/pkg/value"
)

// testNote is the main element type used across the package's tests. It
// covers a required field, a settable field with a default, and a foldable
// list field, and counts destructions for lifetime tests.
type testNote struct {
	Body    string
	Size    int
	hasSize bool
	Tags    value.Value
	hasTags bool

	disposed *atomic.Int32
}

func (n *testNote) Dispose() {
	if n.disposed != nil {
		n.disposed.Add(1)
	}
}

// Field ids of testNote.
const (
	noteFieldBody uint8 = iota
	noteFieldSize
	noteFieldTags
)

var noteFields = []FieldDef[testNote]{
	{
		Name:       "body",
		Docs:       "The note's content.",
		Positional: true,
		Required:   true,
		Input:      func() value.TypeDesc { return value.Type("str") },
		Get: func(n *testNote) (value.Value, bool) {
			return value.Str(n.Body), true
		},
	},
	{
		Name:     "size",
		Docs:     "The note's display size.",
		Settable: true,
		Input:    func() value.TypeDesc { return value.Type("int") },
		Default:  func() value.Value { return value.Int(10) },
		Get: func(n *testNote) (value.Value, bool) {
			if !n.hasSize {
				return value.None(), false
			}
			return value.Int(int64(n.Size)), true
		},
		Set: func(n *testNote, v value.Value) {
			if i, ok := v.AsInt(); ok {
				n.Size = int(i)
				n.hasSize = true
			}
		},
	},
	{
		Name:     "tags",
		Docs:     "Tags attached to the note. Folds across style layers.",
		Settable: true,
		Foldable: true,
		Input:    func() value.TypeDesc { return value.Type("list") },
		Get: func(n *testNote) (value.Value, bool) {
			return n.Tags, n.hasTags
		},
		Set: func(n *testNote, v value.Value) {
			n.Tags = v
			n.hasTags = true
		},
	},
}

var (
	testCap  = NewCapability("test")
	otherCap = NewCapability("other")
)

type noteMarker struct{}

var noteStore LazyStore

var (
	noteType Type[testNote]
	noteElem *Table
)

func init() {
	noteType = Define[testNote](
		"note", "Note", "A note for testing.",
		noteFields,
		func(name string) (uint8, bool) {
			switch name {
			case "body":
				return noteFieldBody, true
			case "size":
				return noteFieldSize, true
			case "tags":
				return noteFieldTags, true
			default:
				return 0, false
			}
		},
		CapabilityMap(map[*Capability]any{testCap: noteMarker{}}),
		func() *LazyStore { return &noteStore },
	).
		WithKeywords("test", "note").
		WithConstruct(constructNote).
		Erase()
	noteElem = noteType.Table()
}

func constructNote(_ *engine.Context, args *Args) (Record, error) {
	body, err := args.Expect("body")
	if err != nil {
		return Record{}, err
	}
	text, ok := body.AsStr()
	if !ok {
		return Record{}, diag.Errorf("note.construct", diag.KindType,
			"expected str for body, got %s", body.Kind())
	}
	if err := args.Finish(); err != nil {
		return Record{}, err
	}
	return noteType.Pack(&testNote{Body: text}), nil
}

// testRule is a field-less element type with every optional behavior
// attached, for identity and modifier tests.
type testRule struct {
	Width int
}

var ruleType = Define[testRule](
	"rule", "Rule", "A horizontal rule for testing.",
	nil, nil, nil, nil,
).
	WithEq(func(a, b *testRule) bool { return a.Width == b.Width }).
	WithRepr(func(e *testRule) string { return "---" }).
	WithLocalName(func(lang Lang, _ Region) string {
		if lang == LangGerman {
			return "Linie"
		}
		return "Rule"
	}).
	WithScope(func() *Scope {
		s := NewScope()
		s.Define("thickness", value.Int(1))
		return s
	}).
	Erase()

var ruleElem = ruleType.Table()

func packNote(n *testNote) Record {
	return noteType.Pack(n)
}
