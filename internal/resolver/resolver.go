// Package resolver provides a name-keyed service locator used to construct
// screens and services on demand.
package resolver

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds an instance, with access to the container for transitive
// dependencies.
type Factory func(c *Container) (any, error)

type registration struct {
	factory   Factory
	singleton bool

	built    bool
	instance any
}

// Container manages named registrations and resolves them to instances.
type Container struct {
	mu      sync.RWMutex
	entries map[string]*registration
}

// New creates an empty container.
func New() *Container {
	return &Container{
		entries: make(map[string]*registration),
	}
}

// Register adds a factory under a name. Registration is idempotent: if the
// name is already taken the call is a no-op and Register returns false.
func (c *Container) Register(name string, factory Factory, singleton bool) bool {
	if name == "" || factory == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[name]; exists {
		return false
	}
	c.entries[name] = &registration{factory: factory, singleton: singleton}
	return true
}

// IsRegistered reports whether a name has a registration.
func (c *Container) IsRegistered(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, exists := c.entries[name]
	return exists
}

// Resolve produces an instance for the name. Singleton registrations build
// once and return the same instance afterwards; non-singleton registrations
// invoke the factory on every call.
func (c *Container) Resolve(name string) (any, error) {
	c.mu.RLock()
	entry, exists := c.entries[name]
	c.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("resolver: %q is not registered", name)
	}

	if entry.singleton {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !entry.built {
			instance, err := entry.factory(c)
			if err != nil {
				return nil, fmt.Errorf("resolver: build %q: %w", name, err)
			}
			entry.instance = instance
			entry.built = true
		}
		return entry.instance, nil
	}

	instance, err := entry.factory(c)
	if err != nil {
		return nil, fmt.Errorf("resolver: build %q: %w", name, err)
	}
	return instance, nil
}

// Names returns all registered names, sorted.
func (c *Container) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear removes every registration. Used for test isolation.
func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*registration)
}
