// Package registry provides a global registry of platform backends.
// Backends register themselves in init() functions, so the set compiled into
// the binary is chosen at build time by which backend packages are imported.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blank/internal/platform"
)

// ErrUnknownBackend is returned by Create for names nobody registered.
var ErrUnknownBackend = errors.New("registry: unknown backend")

// Factory creates a backend subsystem configured by opts.
type Factory func(opts platform.Options) platform.Subsystem

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

type entry struct {
	info    BackendInfo
	factory Factory
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	backends[name] = entry{
		info:    BackendInfo{Name: name, Description: description},
		factory: f,
	}
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for _, e := range backends {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates the named backend.
func Create(name string, opts platform.Options) (platform.Subsystem, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}

	return e.factory(opts), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
