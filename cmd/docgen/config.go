package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Config represents the optional vellum.yaml configuration.
type Config struct {
	Docs DocsConfig `yaml:"docs"`
}

// DocsConfig contains documentation generator settings.
type DocsConfig struct {
	// Title overrides the manifest title. Defaults to the module name.
	Title string `yaml:"title,omitempty"`
	// Out is the output path, relative to the project root.
	Out string `yaml:"out,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Title      string
	Out        string
}

// LoadOptional reads vellum.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "vellum.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read vellum.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse vellum.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads vellum.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.Docs.Title)
	if title == "" {
		parts := strings.Split(modulePath, "/")
		title = parts[len(parts)-1]
	}

	out := strings.TrimSpace(cfg.Docs.Out)
	if out == "" {
		out = filepath.Join("docs", "elements.yaml")
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Title:      title,
		Out:        out,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
