// Package fixture provides the generators that build spreadsheet fixture
// files for viewer testing, plus the registry the CLI drives them through.
package fixture

import (
	"sort"

	"github.com/hashicorp/go-hclog"
)

// Options carries the settings shared by all generators.
type Options struct {
	// Dir is the directory fixture files are written into.
	Dir string

	// Rows and Cols size the bulk-data fixture. Zero values fall back
	// to the generator defaults.
	Rows int
	Cols int

	// Logger receives progress output. A nil logger is replaced with
	// hclog.NewNullLogger.
	Logger hclog.Logger
}

// logger returns the configured logger, never nil.
func (o Options) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

// Generator builds one fixture file.
type Generator interface {
	// Name returns the generator's selector name (e.g. "kitchen").
	Name() string

	// Description returns a human-readable description of the fixture.
	Description() string

	// Generate writes the fixture into opts.Dir and returns the path
	// of the file it created.
	Generate(opts Options) (string, error)
}

// Registry holds all registered fixture generators.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator to the registry.
func (r *Registry) Register(g Generator) {
	r.generators[g.Name()] = g
}

// Get retrieves a generator by name.
func (r *Registry) Get(name string) (Generator, bool) {
	g, ok := r.generators[name]
	return g, ok
}

// List returns all registered generator names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered generator in name order.
func (r *Registry) All() []Generator {
	all := make([]Generator, 0, len(r.generators))
	for _, name := range r.List() {
		all = append(all, r.generators[name])
	}
	return all
}

// Default returns a registry with every built-in generator registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(&KitchenSink{})
	r.Register(&Colors{})
	r.Register(&LargeDataset{})
	r.Register(&FullCatalog{})
	return r
}
