package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestResolveDefaults(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/press\n\ngo 1.24.0\n")

	resolved, err := Resolve(dir)
	r.NoError(err)
	r.Equal("example.com/press", resolved.ModulePath)
	r.Equal("press", resolved.Title)
	r.Equal(filepath.Join("docs", "elements.yaml"), resolved.Out)
}

func TestResolveWithConfig(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/press\n")
	writeFile(t, dir, "vellum.yaml", "docs:\n  title: Press Reference\n  out: ref/elements.yaml\n")

	resolved, err := Resolve(dir)
	r.NoError(err)
	r.Equal("Press Reference", resolved.Title)
	r.Equal("ref/elements.yaml", resolved.Out)
}

func TestResolveMissingGoMod(t *testing.T) {
	r := require.New(t)

	_, err := Resolve(t.TempDir())
	r.Error(err)
}

func TestLoadOptionalAbsent(t *testing.T) {
	r := require.New(t)

	cfg, err := LoadOptional(t.TempDir())
	r.NoError(err)
	r.Empty(cfg.Docs.Title)
}

func TestLoadOptionalMalformed(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	writeFile(t, dir, "vellum.yaml", "docs: [not a mapping\n")

	_, err := LoadOptional(dir)
	r.Error(err)
}
