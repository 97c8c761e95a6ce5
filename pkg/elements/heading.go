package elements

import (
	"fmt"
	"strings"

	"github.com/go-vellum/vellum/pkg/diag"
	"github.com/go-vellum/vellum/pkg/element"
	"github.com/go-vellum/vellum/pkg/engine"
	"github.com/go-vellum/vellum/pkg/style"
	"github.com/go-vellum/vellum/pkg/value"
)

// Heading is a section heading.
type Heading struct {
	Body     string
	Level    int
	hasLevel bool
}

// SetLevel sets the heading's nesting level explicitly.
func (h *Heading) SetLevel(level int) {
	h.Level = level
	h.hasLevel = true
}

// Field ids of [Heading].
const (
	HeadingFieldBody uint8 = iota
	HeadingFieldLevel
)

var headingFields = []element.FieldDef[Heading]{
	{
		Name:       "body",
		Docs:       "The heading's text content.",
		Positional: true,
		Required:   true,
		Input:      func() value.TypeDesc { return value.Type("str") },
		Get: func(h *Heading) (value.Value, bool) {
			return value.Str(h.Body), true
		},
	},
	{
		Name:     "level",
		Docs:     "The nesting depth of the heading, starting at 1.",
		Settable: true,
		Input:    func() value.TypeDesc { return value.Type("int") },
		Default:  func() value.Value { return value.Int(1) },
		Get: func(h *Heading) (value.Value, bool) {
			if !h.hasLevel {
				return value.None(), false
			}
			return value.Int(int64(h.Level)), true
		},
		Set: func(h *Heading, v value.Value) {
			if i, ok := v.AsInt(); ok {
				h.Level = int(i)
				h.hasLevel = true
			}
		},
	},
}

func headingFieldID(name string) (uint8, bool) {
	switch name {
	case "body":
		return HeadingFieldBody, true
	case "level":
		return HeadingFieldLevel, true
	default:
		return 0, false
	}
}

var headingStore element.LazyStore

type headingLocator struct{}

func (headingLocator) Anchor(r element.Record) string {
	h, ok := HeadingType.Unpack(r)
	if !ok {
		return ""
	}
	return "heading-" + strings.ToLower(strings.ReplaceAll(h.Body, " ", "-"))
}

// HeadingType is the typed descriptor of [Heading].
var HeadingType element.Type[Heading]

// HeadingElem is the erased descriptor of [Heading].
var HeadingElem *element.Table

func init() {
	HeadingType = element.Define[Heading](
		"heading", "Heading",
		"A section heading: structures the document into sections.",
		headingFields, headingFieldID,
		element.CapabilityMap(map[*element.Capability]any{
			Locatable: headingLocator{},
		}),
		func() *element.LazyStore { return &headingStore },
	).
		WithKeywords("section", "title").
		WithConstruct(constructHeading).
		WithSet(setHeading).
		WithRepr(func(h *Heading) string {
			level := h.Level
			if !h.hasLevel {
				level = 1
			}
			return fmt.Sprintf("heading(level: %d)[%s]", level, h.Body)
		}).
		WithLocalName(headingLocalName).
		WithScope(func() *element.Scope {
			s := element.NewScope()
			s.Define("outlined", value.Bool(true))
			return s
		}).
		Erase()
	HeadingElem = HeadingType.Table()
	element.Register(HeadingElem)
}

func constructHeading(_ *engine.Context, args *element.Args) (element.Record, error) {
	body, err := args.Expect("body")
	if err != nil {
		return element.Record{}, err
	}
	text, ok := body.AsStr()
	if !ok {
		return element.Record{}, diag.Errorf("heading.construct", diag.KindType,
			"expected str for body, got %s", body.Kind())
	}
	h := &Heading{Body: text}
	if v, ok := args.Named("level"); ok {
		i, isInt := v.AsInt()
		if !isInt {
			return element.Record{}, diag.Errorf("heading.construct", diag.KindType,
				"expected int for level, got %s", v.Kind())
		}
		h.SetLevel(int(i))
	}
	if err := args.Finish(); err != nil {
		return element.Record{}, err
	}
	return HeadingType.Pack(h), nil
}

func setHeading(_ *engine.Context, args *element.Args) (*style.Styles, error) {
	styles := &style.Styles{}
	if v, ok := args.Named("level"); ok {
		if _, isInt := v.AsInt(); !isInt {
			return nil, diag.Errorf("heading.set", diag.KindType,
				"expected int for level, got %s", v.Kind())
		}
		styles.Set(HeadingElem.Prop(HeadingFieldLevel, v))
	}
	if err := args.Finish(); err != nil {
		return nil, err
	}
	return styles, nil
}

func headingLocalName(lang element.Lang, _ element.Region) string {
	switch lang {
	case element.LangGerman:
		return "Abschnitt"
	case element.LangFrench:
		return "Section"
	case element.LangSpanish:
		return "Sección"
	default:
		return "Section"
	}
}
