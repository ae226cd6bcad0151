// Package registry collects the boundary imports a host offers its guests.
package registry

import (
	"fmt"
	"slices"
	"sync"

	adapter "github.com/ruwak-dev/ruwak/infrastructure/wazero"
)

// registryConfig holds configuration for the Registry.
type registryConfig struct {
	strictMode bool // Fail on duplicate registrations
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{
		strictMode: true,
	}
}

// RegistryOption configures a Registry instance.
type RegistryOption func(*registryConfig)

// WithStrictMode enables/disables strict mode for duplicate registrations.
// Default is true (fail on duplicates). Disabled, a later import replaces
// an earlier one of the same name.
func WithStrictMode(enabled bool) RegistryOption {
	return func(c *registryConfig) {
		c.strictMode = enabled
	}
}

// Registry is a concurrency-safe set of imports keyed by name.
type Registry struct {
	config  registryConfig
	imports sync.Map // map[string]adapter.Import
}

// NewRegistry creates a new Registry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{config: cfg}
}

// Register adds imp.
func (r *Registry) Register(imp adapter.Import) error {
	if imp.Name == "" {
		return fmt.Errorf("import has no name")
	}
	if r.config.strictMode {
		if _, loaded := r.imports.LoadOrStore(imp.Name, imp); loaded {
			return fmt.Errorf("import %q already registered", imp.Name)
		}
		return nil
	}
	r.imports.Store(imp.Name, imp)
	return nil
}

// Bind registers fn under name. See adapter.Bind.
func (r *Registry) Bind(name string, fn any) error {
	imp, err := adapter.Bind(name, fn)
	if err != nil {
		return fmt.Errorf("failed to bind %q: %w", name, err)
	}
	return r.Register(imp)
}

// Lookup returns the import registered under name.
func (r *Registry) Lookup(name string) (adapter.Import, bool) {
	v, ok := r.imports.Load(name)
	if !ok {
		return adapter.Import{}, false
	}
	return v.(adapter.Import), true
}

// Names returns the registered import names in sorted order.
func (r *Registry) Names() []string {
	var names []string
	r.imports.Range(func(key, _ any) bool {
		names = append(names, key.(string))
		return true
	})
	slices.Sort(names)
	return names
}

// Imports returns the registered imports sorted by name.
func (r *Registry) Imports() []adapter.Import {
	names := r.Names()
	out := make([]adapter.Import, 0, len(names))
	for _, name := range names {
		if imp, ok := r.Lookup(name); ok {
			out = append(out, imp)
		}
	}
	return out
}
