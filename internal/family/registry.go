// Package family layers the symbol-addressed lookup surface over the cache:
// a fixed registry of descriptor families and, per family, typed accessors
// replacing what a dynamic language would resolve through method dispatch.
package family

import (
	"fmt"
	"sync"

	"github.com/mesh-intelligence/refbook/internal/cache"
	"github.com/mesh-intelligence/refbook/pkg/types"
)

// Registry holds the known descriptor families, keyed both by family name
// ("UserRole") and by set name ("user_role"). Parent references in seed
// files resolve through the set-name index; anything not registered is not a
// descriptor family.
type Registry struct {
	mu      sync.RWMutex
	cache   *cache.SymbolCache
	byName  map[string]*Family
	bySet   map[string]*Family
	ordered []string
}

// NewRegistry builds an empty registry over the symbol cache.
func NewRegistry(c *cache.SymbolCache) *Registry {
	return &Registry{
		cache:  c,
		byName: make(map[string]*Family),
		bySet:  make(map[string]*Family),
	}
}

// Register adds a family by name and returns it. Registering an existing
// name returns the already-registered family.
func (r *Registry) Register(name string) *Family {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.byName[name]; ok {
		return f
	}
	f := &Family{name: name, cache: r.cache}
	r.byName[name] = f
	r.bySet[types.Underscore(name)] = f
	r.ordered = append(r.ordered, name)
	return f
}

// Family returns the registered family with the given name.
func (r *Registry) Family(name string) (*Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownFamily, name)
	}
	return f, nil
}

// BySet returns the family a seed set name backs, if registered.
func (r *Registry) BySet(setName string) (*Family, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.bySet[setName]
	return f, ok
}

// Names lists the registered family names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.ordered))
	copy(out, r.ordered)
	return out
}
