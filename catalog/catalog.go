// SPDX-License-Identifier: MIT

package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dsaviz/engine"
	"github.com/katalvlaran/dsaviz/internal/ctxlog"
)

// Sentinel errors.
var (
	ErrUnknownAlgorithm = errors.New("catalog: unknown algorithm")
	ErrInputType        = errors.New("catalog: wrong input type")
	ErrNoAnimation      = errors.New("catalog: algorithm has no animate-only mode")
	ErrDuplicateEntry   = errors.New("catalog: duplicate algorithm id")
)

// Build turns a typed input into a runnable body.
type Build func(in any) (engine.Body, error)

// Entry describes one runnable algorithm.
type Entry struct {
	ID          string
	Description string

	// NewInput returns a fresh, zero-valued input document (a pointer).
	NewInput func() any

	// Compute builds the full algorithm body.
	Compute Build

	// Animate builds the animate-only body. Nil when unsupported.
	Animate Build
}

// Catalog is a registry of entries keyed by id. It is safe for concurrent use.
type Catalog struct {
	presets Presets

	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns a catalog holding every built-in algorithm, falling back to
// presets for empty inputs.
func New(presets Presets) *Catalog {
	c := &Catalog{presets: presets, entries: make(map[string]Entry)}
	for _, e := range c.builtins() {
		c.entries[e.ID] = e
	}

	return c
}

// Register adds an entry. Ids must be unique.
func (c *Catalog) Register(e Entry) error {
	if e.ID == "" || e.Compute == nil || e.NewInput == nil {
		return fmt.Errorf("%w: incomplete entry %q", engine.ErrInvalidInput, e.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, dup := c.entries[e.ID]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateEntry, e.ID)
	}
	c.entries[e.ID] = e

	return nil
}

// Lookup returns the entry registered under id.
func (c *Catalog) Lookup(id string) (Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %w: %q", engine.ErrInvalidInput, ErrUnknownAlgorithm, id)
	}

	return e, nil
}

// IDs returns every registered id in lexical order.
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Decode parses a YAML input document for id. Unknown fields are rejected;
// an empty document yields the zero input.
func (c *Catalog) Decode(id string, data []byte) (any, error) {
	e, err := c.Lookup(id)
	if err != nil {
		return nil, err
	}
	in := e.NewInput()
	if len(bytes.TrimSpace(data)) == 0 {
		return in, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(in); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode %s input: %w", engine.ErrInvalidInput, id, err)
	}

	return in, nil
}

// Body resolves id and builds its body from in. A nil input selects the
// entry's zero input. animate selects the animate-only body.
func (c *Catalog) Body(id string, in any, animate bool) (engine.Body, error) {
	e, err := c.Lookup(id)
	if err != nil {
		return nil, err
	}
	if in == nil {
		in = e.NewInput()
	}

	build := e.Compute
	if animate {
		if e.Animate == nil {
			return nil, fmt.Errorf("%w: %w: %q", engine.ErrInvalidInput, ErrNoAnimation, id)
		}
		build = e.Animate
	}

	return build(in)
}

// Run starts algorithm id on rn with input in. Errors are synchronous: an
// unknown id, a mistyped or invalid input and bad options all wrap
// engine.ErrInvalidInput and no run is created.
func (c *Catalog) Run(ctx context.Context, rn *engine.Runner, id string, in any, opts ...engine.Option) (*engine.Run, error) {
	o, err := engine.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	body, err := c.Body(id, in, o.AnimateOnly)
	if err != nil {
		ctxlog.FromContext(ctx).Debug("catalog: rejected run", "algorithm", id, "error", err)
		return nil, err
	}

	return rn.Start(ctx, id, body, opts...)
}

// typed adapts a function over a concrete input pointer to Build.
// A nil *T is replaced by a zero input.
func typed[T any](f func(*T) (engine.Body, error)) Build {
	return func(in any) (engine.Body, error) {
		v, ok := in.(*T)
		if !ok {
			return nil, fmt.Errorf("%w: %w: want %T, got %T", engine.ErrInvalidInput, ErrInputType, (*T)(nil), in)
		}
		if v == nil {
			v = new(T)
		}
		body, err := f(v)

		return body, wrap(err)
	}
}

// wrap marks construction errors that do not already carry ErrInvalidInput.
func wrap(err error) error {
	if err == nil || errors.Is(err, engine.ErrInvalidInput) {
		return err
	}

	return fmt.Errorf("%w: %w", engine.ErrInvalidInput, err)
}
