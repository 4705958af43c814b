package layout

import (
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/columns/pkg/errors"
)

// Factory creates an algorithm instance bound to host.
type Factory func(host Host) TiledAlgorithm

// Registry maps algorithm names to factories. It is safe for concurrent use;
// plugins may register and unregister while workspaces are being created.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name. Registering a name twice is an error.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "algorithm name cannot be empty")
	}
	if f == nil {
		return errors.New(errors.ErrCodeInvalidInput, "algorithm %q has no factory", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return errors.New(errors.ErrCodeInvalidInput, "algorithm %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// Unregister removes name. Existing instances are unaffected.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

// New creates an instance of the named algorithm.
func (r *Registry) New(name string, host Host) (TiledAlgorithm, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownAlgorithm, "unknown layout algorithm: %s", name)
	}
	if host.Logger == nil {
		host.Logger = log.Default()
	}
	return f(host), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
