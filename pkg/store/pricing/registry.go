package pricing

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

const (
	SourceStatic = "static"
	SourceINI    = "ini"
	SourceXLSX   = "xlsx"
)

// SourceFactory creates a Store from a source location
type SourceFactory func(path string) (Store, error)

// Registry manages price series source factories
type Registry interface {
	// Register adds a new source factory
	Register(source string, factory SourceFactory) error
	// Create instantiates a store for the specified source using the provided path
	Create(source, path string) (Store, error)
	// ListSources returns the registered source names in ascending order
	ListSources() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
}

// NewRegistry creates a new source registry
func NewRegistry(factories map[string]SourceFactory) Registry {
	r := &registry{factories: make(map[string]SourceFactory, len(factories))}
	for source, factory := range factories {
		r.factories[source] = factory
	}
	return r
}

// DefaultRegistry knows the static, ini and xlsx sources
func DefaultRegistry() Registry {
	return NewRegistry(map[string]SourceFactory{
		SourceStatic: func(string) (Store, error) { return NewDefaultStore(), nil },
		SourceINI:    func(path string) (Store, error) { return LoadINI(path) },
		SourceXLSX:   LoadXLSX,
	})
}

func (r *registry) Register(source string, factory SourceFactory) error {
	if source == "" {
		return fmt.Errorf("source name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[source]; exists {
		return fmt.Errorf("source %q is already registered", source)
	}

	r.factories[source] = factory
	return nil
}

func (r *registry) Create(source, path string) (Store, error) {
	r.mu.RLock()
	factory, exists := r.factories[source]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("price source %q is not registered", source)
	}

	return factory(path)
}

func (r *registry) ListSources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.factories))
}
