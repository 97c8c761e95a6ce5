package elements

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-vellum/vellum/pkg/diag"
	"github.com/go-vellum/vellum/pkg/element"
	"github.com/go-vellum/vellum/pkg/engine"
	"github.com/go-vellum/vellum/pkg/style"
	"github.com/go-vellum/vellum/pkg/value"
)

func TestBuiltinsRegistered(t *testing.T) {
	r := require.New(t)

	for _, name := range []string{"heading", "paragraph", "list.item"} {
		got, ok := element.Lookup(name)
		r.True(ok, name)
		r.Equal(name, got.Name())
	}
}

func TestConstructHeading(t *testing.T) {
	r := require.New(t)

	ctx := engine.NewContext()
	args := element.NewArgs("heading.construct", value.Str("Intro"))
	args.AddNamed("level", value.Int(2))

	rec, err := HeadingElem.Construct(ctx, args)
	r.NoError(err)
	defer rec.Release()

	r.True(rec.Is(HeadingElem))
	h, ok := HeadingType.Unpack(rec)
	r.True(ok)
	r.Equal("Intro", h.Body)
	r.Equal(2, h.Level)
	r.Equal("heading(level: 2)[Intro]", element.Repr(rec))
}

func TestConstructHeadingErrors(t *testing.T) {
	r := require.New(t)
	ctx := engine.NewContext()

	// Missing body.
	_, err := HeadingElem.Construct(ctx, element.NewArgs("heading.construct"))
	var derr *diag.Error
	r.ErrorAs(err, &derr)
	r.Equal(diag.KindArgument, derr.Kind)

	// Wrong body type.
	_, err = HeadingElem.Construct(ctx, element.NewArgs("heading.construct", value.Int(1)))
	r.ErrorAs(err, &derr)
	r.Equal(diag.KindType, derr.Kind)

	// Superfluous argument.
	args := element.NewArgs("heading.construct", value.Str("x"))
	args.AddNamed("bogus", value.Int(1))
	_, err = HeadingElem.Construct(ctx, args)
	r.ErrorAs(err, &derr)
	r.Equal(diag.KindArgument, derr.Kind)
}

func TestHeadingSetRule(t *testing.T) {
	r := require.New(t)
	ctx := engine.NewContext()

	args := element.NewArgs("heading.set")
	args.AddNamed("level", value.Int(3))
	styles, err := HeadingElem.Set(ctx, args)
	r.NoError(err)
	chain := style.New(styles)

	rec, err := HeadingElem.Construct(ctx, element.NewArgs("heading.construct", value.Str("x")))
	r.NoError(err)
	defer rec.Release()

	f, ok := element.NewHandle(rec).Field(HeadingFieldLevel)
	r.True(ok)
	r.False(f.Has())
	f.Materialize(chain)
	v, present := f.Get()
	r.True(present)
	r.True(value.Equal(v, value.Int(3)))
}

func TestHeadingDefaultLevel(t *testing.T) {
	r := require.New(t)
	ctx := engine.NewContext()

	rec, err := HeadingElem.Construct(ctx, element.NewArgs("heading.construct", value.Str("x")))
	r.NoError(err)
	defer rec.Release()

	f, ok := element.NewHandle(rec).Field(HeadingFieldLevel)
	r.True(ok)
	f.Materialize(style.Chain{})
	v, present := f.Get()
	r.True(present)
	r.True(value.Equal(v, value.Int(1)))
}

func TestHeadingLocalNames(t *testing.T) {
	r := require.New(t)

	name, ok := HeadingElem.LocalName(element.LangGerman, "")
	r.True(ok)
	r.Equal("Abschnitt", name)

	name, ok = HeadingElem.LocalName(element.LangEnglish, "GB")
	r.True(ok)
	r.Equal("Section", name)

	// Paragraph has no localized names.
	_, ok = ParagraphElem.LocalName(element.LangEnglish, "")
	r.False(ok)
}

func TestHeadingScope(t *testing.T) {
	r := require.New(t)

	scope := HeadingElem.Scope()
	v, ok := scope.Get("outlined")
	r.True(ok)
	r.True(value.Equal(v, value.Bool(true)))
}

func TestLocatableCapability(t *testing.T) {
	r := require.New(t)
	ctx := engine.NewContext()

	rec, err := HeadingElem.Construct(ctx, element.NewArgs("heading.construct", value.Str("First Steps")))
	r.NoError(err)
	defer rec.Release()

	impl := HeadingElem.Capability(Locatable)
	r.NotNil(impl)
	locator, ok := impl.(Locator)
	r.True(ok)
	r.Equal("heading-first-steps", locator.Anchor(rec))

	// Paragraph is not locatable, and nothing implements Synthesize.
	r.Nil(ParagraphElem.Capability(Locatable))
	r.Nil(HeadingElem.Capability(Synthesize))
}

func TestParagraphEquality(t *testing.T) {
	r := require.New(t)
	ctx := engine.NewContext()

	build := func(justify *bool) element.Record {
		args := element.NewArgs("paragraph.construct", value.Str("text"))
		if justify != nil {
			args.AddNamed("justify", value.Bool(*justify))
		}
		rec, err := ParagraphElem.Construct(ctx, args)
		r.NoError(err)
		return rec
	}

	yes := true
	a := build(&yes)
	defer a.Release()
	b := build(&yes)
	defer b.Release()
	c := build(nil)
	defer c.Release()

	r.True(element.Equal(a, b))
	r.False(element.Equal(a, c))

	// Equal payloads also agree on their content hash.
	r.Equal(element.ContentHash(a), element.ContentHash(b))
	r.NotEqual(element.ContentHash(a), element.ContentHash(c))
}

func TestListItemMarkersFold(t *testing.T) {
	r := require.New(t)
	ctx := engine.NewContext()

	outerArgs := element.NewArgs("list.item.set")
	outerArgs.AddNamed("markers", value.NewList(value.Str("•"), value.Str("–")))
	outerStyles, err := ListItemElem.Set(ctx, outerArgs)
	r.NoError(err)

	innerArgs := element.NewArgs("list.item.set")
	innerArgs.AddNamed("markers", value.Str("▶"))
	innerStyles, err := ListItemElem.Set(ctx, innerArgs)
	r.NoError(err)

	chain := style.New(outerStyles).Push(innerStyles)

	rec, err := ListItemElem.Construct(ctx, element.NewArgs("list.item.construct", value.Str("point")))
	r.NoError(err)
	defer rec.Release()

	f, ok := element.NewHandle(rec).Field(ListItemFieldMarkers)
	r.True(ok)
	v, present := f.GetWithStyles(chain)
	r.True(present)
	r.True(value.Equal(v, value.NewList(value.Str("•"), value.Str("–"), value.Str("▶"))))
}

func TestListItemDepthSynthesized(t *testing.T) {
	r := require.New(t)
	ctx := engine.NewContext()

	rec, err := ListItemElem.Construct(ctx, element.NewArgs("list.item.construct", value.Str("point")))
	r.NoError(err)
	defer rec.Release()

	f, ok := element.NewHandle(rec).Field(ListItemFieldDepth)
	r.True(ok)
	r.True(f.Table().Synthesized())
	r.False(f.Has())

	item, ok := ListItemType.Unpack(rec)
	r.True(ok)
	item.SetDepth(2)

	r.True(f.Has())
	v, present := f.Get()
	r.True(present)
	r.True(value.Equal(v, value.Int(2)))
}

func TestSetRuleTypeErrors(t *testing.T) {
	r := require.New(t)
	ctx := engine.NewContext()

	var derr *diag.Error

	args := element.NewArgs("heading.set")
	args.AddNamed("level", value.Str("high"))
	_, err := HeadingElem.Set(ctx, args)
	r.ErrorAs(err, &derr)
	r.Equal(diag.KindType, derr.Kind)

	args = element.NewArgs("list.item.set")
	args.AddNamed("markers", value.Int(3))
	_, err = ListItemElem.Set(ctx, args)
	r.ErrorAs(err, &derr)
	r.Equal(diag.KindType, derr.Kind)
}
