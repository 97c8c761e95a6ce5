package elements

import (
	"github.com/go-vellum/vellum/pkg/diag"
	"github.com/go-vellum/vellum/pkg/element"
	"github.com/go-vellum/vellum/pkg/engine"
	"github.com/go-vellum/vellum/pkg/style"
	"github.com/go-vellum/vellum/pkg/value"
)

// ListItem is one item of a bullet list.
//
// Its markers field folds across style layers: every layer contributes
// marker symbols and nested items cycle through the concatenation, so an
// inner set rule extends the outer marker sequence instead of replacing it.
type ListItem struct {
	Body       string
	markers    value.Value
	hasMarkers bool
	depth      int
	hasDepth   bool
}

// Depth returns the engine-synthesized nesting depth.
func (l *ListItem) Depth() (int, bool) {
	return l.depth, l.hasDepth
}

// SetDepth records the nesting depth. Called by the engine during
// realization, never from user arguments.
func (l *ListItem) SetDepth(depth int) {
	l.depth = depth
	l.hasDepth = true
}

// Field ids of [ListItem].
const (
	ListItemFieldBody uint8 = iota
	ListItemFieldMarkers
	ListItemFieldDepth
)

var listItemFields = []element.FieldDef[ListItem]{
	{
		Name:       "body",
		Docs:       "The item's content.",
		Positional: true,
		Required:   true,
		Input:      func() value.TypeDesc { return value.Type("str") },
		Get: func(l *ListItem) (value.Value, bool) {
			return value.Str(l.Body), true
		},
	},
	{
		Name:     "markers",
		Docs:     "Marker symbols, cycled by nesting depth. Folds across style layers.",
		Settable: true,
		Foldable: true,
		Input:    func() value.TypeDesc { return value.Union(value.Type("list"), value.Type("str")) },
		Default:  func() value.Value { return value.NewList(value.Str("•")) },
		Get: func(l *ListItem) (value.Value, bool) {
			return l.markers, l.hasMarkers
		},
		Set: func(l *ListItem, v value.Value) {
			l.markers = v
			l.hasMarkers = true
		},
	},
	{
		Name:        "depth",
		Docs:        "The item's nesting depth, synthesized by the engine.",
		Synthesized: true,
		Input:       func() value.TypeDesc { return value.Type("int") },
		Get: func(l *ListItem) (value.Value, bool) {
			if !l.hasDepth {
				return value.None(), false
			}
			return value.Int(int64(l.depth)), true
		},
	},
}

func listItemFieldID(name string) (uint8, bool) {
	switch name {
	case "body":
		return ListItemFieldBody, true
	case "markers":
		return ListItemFieldMarkers, true
	case "depth":
		return ListItemFieldDepth, true
	default:
		return 0, false
	}
}

var listItemStore element.LazyStore

// ListItemType is the typed descriptor of [ListItem].
var ListItemType element.Type[ListItem]

// ListItemElem is the erased descriptor of [ListItem].
var ListItemElem *element.Table

func init() {
	ListItemType = element.Define[ListItem](
		"list.item", "List Item",
		"One item of a bullet list.",
		listItemFields, listItemFieldID,
		nil,
		func() *element.LazyStore { return &listItemStore },
	).
		WithKeywords("list", "bullet", "item").
		WithConstruct(constructListItem).
		WithSet(setListItem).
		Erase()
	ListItemElem = ListItemType.Table()
	element.Register(ListItemElem)
}

func constructListItem(_ *engine.Context, args *element.Args) (element.Record, error) {
	body, err := args.Expect("body")
	if err != nil {
		return element.Record{}, err
	}
	text, ok := body.AsStr()
	if !ok {
		return element.Record{}, diag.Errorf("list.item.construct", diag.KindType,
			"expected str for body, got %s", body.Kind())
	}
	if err := args.Finish(); err != nil {
		return element.Record{}, err
	}
	return ListItemType.Pack(&ListItem{Body: text}), nil
}

func setListItem(_ *engine.Context, args *element.Args) (*style.Styles, error) {
	styles := &style.Styles{}
	if v, ok := args.Named("markers"); ok {
		switch v.Kind() {
		case value.KindList:
			styles.Set(ListItemElem.Prop(ListItemFieldMarkers, v))
		case value.KindStr:
			// A single marker is shorthand for a one-element list.
			styles.Set(ListItemElem.Prop(ListItemFieldMarkers, value.NewList(v)))
		default:
			return nil, diag.Errorf("list.item.set", diag.KindType,
				"expected list or str for markers, got %s", v.Kind())
		}
	}
	if err := args.Finish(); err != nil {
		return nil, err
	}
	return styles, nil
}
