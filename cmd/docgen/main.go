// Package main provides the element reference generator for vellum.
// It walks the global element registry and emits a YAML manifest describing
// every registered element type: metadata, localized names, scope, and
// per-field roles, input types, and defaults.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-vellum/vellum/pkg/element"

	// Register the built-in element types.
	_ "github.com/go-vellum/vellum/pkg/elements"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dir     string
		out     string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "docgen",
		Short: "Generate the vellum element reference",
		Long: `docgen walks the registered element descriptors and writes a YAML
manifest of the element reference, together with its content digest.

Settings are read from vellum.yaml in the project root when present;
flags override them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return run(dir, out, logger)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "project root (default: walk up to go.mod)")
	cmd.Flags().StringVar(&out, "out", "", "output path relative to the project root")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func run(dir, out string, logger *zap.Logger) error {
	if dir == "" {
		root, err := FindProjectRoot()
		if err != nil {
			return err
		}
		dir = root
	}

	resolved, err := Resolve(dir)
	if err != nil {
		return err
	}
	if out != "" {
		resolved.Out = out
	}

	tables := element.All()
	logger.Info("generating element reference",
		zap.String("module", resolved.ModulePath),
		zap.Int("elements", len(tables)))

	manifest := BuildManifest(resolved.Title, resolved.ModulePath, tables)
	data, dgst, err := manifest.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	target := filepath.Join(resolved.Root, resolved.Out)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	logger.Info("wrote element reference",
		zap.String("path", target),
		zap.String("digest", dgst.String()))
	return nil
}
