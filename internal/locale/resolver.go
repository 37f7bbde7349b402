package locale

import (
	"github.com/mesh-intelligence/refbook/pkg/types"
)

// Resolver resolves descriptor display attributes at read time. Resolution
// is re-evaluated on every call: the active locale can change between calls
// within the same process, so nothing is cached at this layer.
type Resolver struct {
	catalog Catalog
	active  func() string
}

// NewResolver builds a Resolver over the catalog. active supplies the
// ambient locale per call.
func NewResolver(catalog Catalog, active func() string) *Resolver {
	return &Resolver{catalog: catalog, active: active}
}

// Name resolves the descriptor's display name for the active locale,
// falling back to the raw stored value.
func (r *Resolver) Name(d *types.Descriptor) string {
	return r.resolve(d, "name", d.Name)
}

// Description resolves the descriptor's description for the active locale,
// falling back to the raw stored value.
func (r *Resolver) Description(d *types.Descriptor) string {
	return r.resolve(d, "description", d.Description)
}

// resolve asks the catalog under the scope (descriptors, <set>, <symbol>)
// and falls back to the raw value. The fallback is the empty string, never
// absence, so presence validation upstream needs no locale special case.
func (r *Resolver) resolve(d *types.Descriptor, attribute, raw string) string {
	scope := []string{"descriptors", types.Underscore(d.Family), d.Symbol}
	if v, ok := r.catalog.Resolve(scope, attribute, r.active()); ok {
		return v
	}
	return raw
}
