package elements

import (
	"github.com/go-vellum/vellum/pkg/diag"
	"github.com/go-vellum/vellum/pkg/element"
	"github.com/go-vellum/vellum/pkg/engine"
	"github.com/go-vellum/vellum/pkg/style"
	"github.com/go-vellum/vellum/pkg/value"
)

// Paragraph is a run of body text.
type Paragraph struct {
	Body       string
	Justify    bool
	hasJustify bool
}

// SetJustify sets the paragraph's justification explicitly.
func (p *Paragraph) SetJustify(justify bool) {
	p.Justify = justify
	p.hasJustify = true
}

// Field ids of [Paragraph].
const (
	ParagraphFieldBody uint8 = iota
	ParagraphFieldJustify
)

var paragraphFields = []element.FieldDef[Paragraph]{
	{
		Name:       "body",
		Docs:       "The paragraph's text content.",
		Positional: true,
		Required:   true,
		Input:      func() value.TypeDesc { return value.Type("str") },
		Get: func(p *Paragraph) (value.Value, bool) {
			return value.Str(p.Body), true
		},
	},
	{
		Name:     "justify",
		Docs:     "Whether to justify the paragraph's lines.",
		Settable: true,
		Input:    func() value.TypeDesc { return value.Type("bool") },
		Default:  func() value.Value { return value.Bool(false) },
		Get: func(p *Paragraph) (value.Value, bool) {
			if !p.hasJustify {
				return value.None(), false
			}
			return value.Bool(p.Justify), true
		},
		Set: func(p *Paragraph, v value.Value) {
			if b, ok := v.AsBool(); ok {
				p.Justify = b
				p.hasJustify = true
			}
		},
	},
}

func paragraphFieldID(name string) (uint8, bool) {
	switch name {
	case "body":
		return ParagraphFieldBody, true
	case "justify":
		return ParagraphFieldJustify, true
	default:
		return 0, false
	}
}

var paragraphStore element.LazyStore

// ParagraphType is the typed descriptor of [Paragraph].
var ParagraphType element.Type[Paragraph]

// ParagraphElem is the erased descriptor of [Paragraph].
var ParagraphElem *element.Table

func init() {
	ParagraphType = element.Define[Paragraph](
		"paragraph", "Paragraph",
		"A logical run of body text, wrapped into lines during layout.",
		paragraphFields, paragraphFieldID,
		nil,
		func() *element.LazyStore { return &paragraphStore },
	).
		WithKeywords("text", "body").
		WithConstruct(constructParagraph).
		WithSet(setParagraph).
		WithEq(func(a, b *Paragraph) bool {
			return a.Body == b.Body &&
				a.hasJustify == b.hasJustify &&
				(!a.hasJustify || a.Justify == b.Justify)
		}).
		Erase()
	ParagraphElem = ParagraphType.Table()
	element.Register(ParagraphElem)
}

func constructParagraph(_ *engine.Context, args *element.Args) (element.Record, error) {
	body, err := args.Expect("body")
	if err != nil {
		return element.Record{}, err
	}
	text, ok := body.AsStr()
	if !ok {
		return element.Record{}, diag.Errorf("paragraph.construct", diag.KindType,
			"expected str for body, got %s", body.Kind())
	}
	p := &Paragraph{Body: text}
	if v, ok := args.Named("justify"); ok {
		b, isBool := v.AsBool()
		if !isBool {
			return element.Record{}, diag.Errorf("paragraph.construct", diag.KindType,
				"expected bool for justify, got %s", v.Kind())
		}
		p.SetJustify(b)
	}
	if err := args.Finish(); err != nil {
		return element.Record{}, err
	}
	return ParagraphType.Pack(p), nil
}

func setParagraph(_ *engine.Context, args *element.Args) (*style.Styles, error) {
	styles := &style.Styles{}
	if v, ok := args.Named("justify"); ok {
		if _, isBool := v.AsBool(); !isBool {
			return nil, diag.Errorf("paragraph.set", diag.KindType,
				"expected bool for justify, got %s", v.Kind())
		}
		styles.Set(ParagraphElem.Prop(ParagraphFieldJustify, v))
	}
	if err := args.Finish(); err != nil {
		return nil, err
	}
	return styles, nil
}
