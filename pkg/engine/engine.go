// Package engine provides the execution context threaded through element
// constructors and set rules.
//
// The context is deliberately small: the element model needs a place to
// report warnings and a logger, nothing more. Evaluation, layout, and
// rendering state belong to the surrounding engine.
package engine

import (
	"sync"

	"go.uber.org/zap"

	"github.com/go-vellum/vellum/pkg/diag"
)

// Context carries cross-cutting state for one compilation.
// It is safe for concurrent use.
type Context struct {
	logger *zap.Logger

	mu       sync.Mutex
	warnings []*diag.Error
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used by hooks running under this context.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		c.logger = l
	}
}

// NewContext creates a context. Without WithLogger it logs nowhere.
func NewContext(opts ...Option) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// Logger returns the context's logger. Never nil.
func (c *Context) Logger() *zap.Logger {
	return c.logger
}

// Warn records a non-fatal diagnostic.
func (c *Context) Warn(err *diag.Error) {
	if err == nil {
		return
	}
	c.logger.Warn("element diagnostic",
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err))
	c.mu.Lock()
	c.warnings = append(c.warnings, err)
	c.mu.Unlock()
}

// Warnings returns a snapshot of the recorded warnings in order.
func (c *Context) Warnings() []*diag.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*diag.Error, len(c.warnings))
	copy(out, c.warnings)
	return out
}
