package family

import (
	"fmt"

	"github.com/mesh-intelligence/refbook/internal/cache"
	"github.com/mesh-intelligence/refbook/pkg/types"
)

// Family is the lookup surface for one descriptor family. Find treats
// absence as a normal answer; Get and Is fail loudly on unknown symbols,
// because an unknown symbol in those forms usually signals a typo at the
// call site rather than a legitimate negative.
type Family struct {
	name  string
	cache *cache.SymbolCache
}

// Name returns the family name, e.g. "Role".
func (f *Family) Name() string {
	return f.name
}

// Find resolves a symbol through the cache. ok is false when no such row
// exists; err reports repository failures only.
func (f *Family) Find(symbol string) (*types.Descriptor, bool, error) {
	return f.cache.FindBySymbol(f.name, symbol)
}

// Get resolves a symbol that the caller expects to exist. Returns
// ErrUnknownSymbol when it does not.
func (f *Family) Get(symbol string) (*types.Descriptor, error) {
	d, ok, err := f.cache.FindBySymbol(f.name, symbol)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", types.ErrUnknownSymbol, f.name, symbol)
	}
	return d, nil
}

// ByID resolves a surrogate id. A missing id propagates ErrNotFound.
func (f *Family) ByID(id int64) (*types.Descriptor, error) {
	return f.cache.FindByID(f.name, id)
}

// Is reports whether the descriptor's own symbol equals candidate. The
// candidate must itself be a known symbol of the family; an unknown
// candidate returns ErrUnknownSymbol, never false.
func (f *Family) Is(d *types.Descriptor, candidate string) (bool, error) {
	ref, ok, err := f.cache.FindBySymbol(f.name, candidate)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("%w: %s.%s", types.ErrUnknownSymbol, f.name, candidate)
	}
	return d.Symbol == ref.Symbol, nil
}

// Collection maps each requested symbol through the cache, preserving the
// caller's order. Unknown symbols come back as nil in their position: the
// result always has exactly len(symbols) entries.
func (f *Family) Collection(symbols ...string) ([]*types.Descriptor, error) {
	out := make([]*types.Descriptor, len(symbols))
	for i, s := range symbols {
		d, ok, err := f.cache.FindBySymbol(f.name, s)
		if err != nil {
			return nil, err
		}
		if ok {
			out[i] = d
		}
	}
	return out, nil
}

// Symbols returns the memoized symbol listing for the family. ok is false
// while no rows exist yet; see cache.SymbolCache.Symbols for the staleness
// caveat.
func (f *Family) Symbols() ([]string, bool, error) {
	return f.cache.Symbols(f.name)
}
