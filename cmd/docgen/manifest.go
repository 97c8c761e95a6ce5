package main

import (
	"github.com/opencontainers/go-digest"
	"gopkg.in/yaml.v3"

	"github.com/go-vellum/vellum/pkg/element"
)

// Manifest is the generated element reference document.
type Manifest struct {
	Title    string       `yaml:"title"`
	Module   string       `yaml:"module"`
	Elements []ElementDoc `yaml:"elements"`
}

// ElementDoc documents one registered element type.
type ElementDoc struct {
	Name       string      `yaml:"name"`
	Title      string      `yaml:"title"`
	Docs       string      `yaml:"docs"`
	Keywords   []string    `yaml:"keywords,omitempty"`
	LocalNames []LocalName `yaml:"localNames,omitempty"`
	Scope      []string    `yaml:"scope,omitempty"`
	Fields     []FieldDoc  `yaml:"fields"`
}

// LocalName is one localized display name. A slice keeps the manifest
// encoding deterministic, which the content digest depends on.
type LocalName struct {
	Lang string `yaml:"lang"`
	Name string `yaml:"name"`
}

// FieldDoc documents one field of an element type.
type FieldDoc struct {
	Name        string `yaml:"name"`
	Docs        string `yaml:"docs"`
	Input       string `yaml:"input"`
	Default     string `yaml:"default,omitempty"`
	Positional  bool   `yaml:"positional,omitempty"`
	Variadic    bool   `yaml:"variadic,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
	Settable    bool   `yaml:"settable,omitempty"`
	Synthesized bool   `yaml:"synthesized,omitempty"`
	Foldable    bool   `yaml:"foldable,omitempty"`
}

// manifestLangs are the languages sampled for localized names.
var manifestLangs = []element.Lang{
	element.LangEnglish,
	element.LangGerman,
	element.LangFrench,
	element.LangSpanish,
}

// BuildManifest collects documentation for the given descriptors, in order.
func BuildManifest(title, module string, tables []*element.Table) *Manifest {
	m := &Manifest{Title: title, Module: module}
	for _, t := range tables {
		m.Elements = append(m.Elements, documentElement(t))
	}
	return m
}

func documentElement(t *element.Table) ElementDoc {
	doc := ElementDoc{
		Name:     t.Name(),
		Title:    t.Title(),
		Docs:     t.Docs(),
		Keywords: t.Keywords(),
		Scope:    t.Scope().Names(),
	}
	for _, lang := range manifestLangs {
		if name, ok := t.LocalName(lang, ""); ok {
			doc.LocalNames = append(doc.LocalNames, LocalName{
				Lang: string(lang),
				Name: name,
			})
		}
	}
	for id := 0; id < t.NumFields(); id++ {
		f, _ := t.FieldByID(uint8(id))
		doc.Fields = append(doc.Fields, documentField(f))
	}
	return doc
}

func documentField(f *element.FieldTable) FieldDoc {
	doc := FieldDoc{
		Name:        f.Name(),
		Docs:        f.Docs(),
		Input:       f.Input().String(),
		Positional:  f.Positional(),
		Variadic:    f.Variadic(),
		Required:    f.Required(),
		Settable:    f.Settable(),
		Synthesized: f.Synthesized(),
		Foldable:    f.Foldable(),
	}
	if def, ok := f.Default(); ok {
		doc.Default = def.String()
	}
	return doc
}

// Encode marshals the manifest to YAML and returns its content digest. The
// digest lets CI detect stale committed reference docs without comparing
// file contents.
func (m *Manifest) Encode() ([]byte, digest.Digest, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, "", err
	}
	return data, digest.FromBytes(data), nil
}
