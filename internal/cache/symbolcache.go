// Package cache implements the per-family symbol cache: symbol->descriptor
// and id->descriptor lookups backed by a TTL cache store, with synchronous
// invalidation after every repository write and a memoized per-process
// symbol listing.
package cache

import (
	"errors"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

// entryKey addresses one cached row: by symbol when symbol is non-empty,
// by id otherwise.
type entryKey struct {
	family string
	symbol string
	id     int64
}

func symbolKey(family, symbol string) entryKey { return entryKey{family: family, symbol: symbol} }
func idKey(family string, id int64) entryKey   { return entryKey{family: family, id: id} }

// SymbolCache maps (family, symbol) and (family, id) to descriptors. A nil
// cached value records a negative result when negative caching is on.
//
// The cache registers itself as an after-save hook on the repository, so
// invalidation happens synchronously inside every successful write.
type SymbolCache struct {
	repo  types.Repository
	store *ttlcache.Cache[entryKey, *types.Descriptor]
	cfg   types.CacheConfig

	// janitor records whether the expiration goroutine was started; Stop
	// must not signal a janitor that never ran.
	janitor  bool
	stopOnce sync.Once

	// symbols memoizes AllSymbols per family for the process lifetime.
	// Writes intentionally do not invalidate it; symbol sets are
	// append-mostly and settle at seed time. Reset clears it.
	symMu   sync.Mutex
	symbols map[string][]string
}

// New builds a SymbolCache over the repository and hooks invalidation into
// its after-save notifications.
func New(repo types.Repository, cfg types.CacheConfig) *SymbolCache {
	var opts []ttlcache.Option[entryKey, *types.Descriptor]
	if cfg.TTLSeconds > 0 {
		opts = append(opts, ttlcache.WithTTL[entryKey, *types.Descriptor](
			time.Duration(cfg.TTLSeconds)*time.Second,
		))
	}

	c := &SymbolCache{
		repo:    repo,
		store:   ttlcache.New(opts...),
		cfg:     cfg,
		symbols: make(map[string][]string),
	}
	if cfg.TTLSeconds > 0 {
		// Without the janitor, expired entries are filtered on read but
		// stay resident until overwritten.
		go c.store.Start()
		c.janitor = true
	}
	repo.AfterSave(func(d *types.Descriptor, prevSymbol string) {
		c.Invalidate(d.Family, prevSymbol, d.ID)
	})
	return c
}

// Stop terminates the expiration goroutine, if one was started. Safe to call
// more than once and on caches without a TTL.
func (c *SymbolCache) Stop() {
	c.stopOnce.Do(func() {
		if c.janitor {
			c.store.Stop()
		}
	})
}

// FindBySymbol resolves a symbol within a family. Absence is a normal
// result: ok is false and err is nil when no such row exists.
func (c *SymbolCache) FindBySymbol(family, symbol string) (*types.Descriptor, bool, error) {
	if !c.cfg.CachingEnabled(family) {
		return c.loadBySymbol(family, symbol, false)
	}

	if item := c.store.Get(symbolKey(family, symbol)); item != nil {
		d := item.Value()
		return d, d != nil, nil
	}
	return c.loadBySymbol(family, symbol, true)
}

// FindByID resolves an id within a family. Unlike symbol lookups, a missing
// id propagates ErrNotFound.
func (c *SymbolCache) FindByID(family string, id int64) (*types.Descriptor, error) {
	if !c.cfg.CachingEnabled(family) {
		return c.repo.FindByID(family, id)
	}

	if item := c.store.Get(idKey(family, id)); item != nil {
		if d := item.Value(); d != nil {
			return d, nil
		}
		return nil, types.ErrNotFound
	}

	d, err := c.repo.FindByID(family, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) && c.cfg.Negative {
			c.store.Set(idKey(family, id), nil, ttlcache.DefaultTTL)
		}
		return nil, err
	}
	c.store.Set(idKey(family, id), d, ttlcache.DefaultTTL)
	return d, nil
}

// Invalidate removes both cache keys for a row. Callers pass the symbol the
// row carried before the write, so a renamed symbol evicts the stale entry.
func (c *SymbolCache) Invalidate(family, prevSymbol string, id int64) {
	c.store.Delete(symbolKey(family, prevSymbol))
	c.store.Delete(idKey(family, id))
}

// Symbols returns every symbol of the family, memoized for the process
// lifetime. ok is false while no rows exist yet, distinguishing "not loaded"
// from a genuinely empty set; nothing is memoized in that case, so callers
// racing the first seed can retry.
func (c *SymbolCache) Symbols(family string) ([]string, bool, error) {
	c.symMu.Lock()
	defer c.symMu.Unlock()

	if s, ok := c.symbols[family]; ok {
		return s, true, nil
	}

	s, err := c.repo.AllSymbols(family)
	if err != nil {
		return nil, false, err
	}
	if len(s) == 0 {
		return nil, false, nil
	}
	c.symbols[family] = s
	return s, true, nil
}

// ResetSymbols discards the memoized symbol listings, forcing recomputation
// on next use.
func (c *SymbolCache) ResetSymbols() {
	c.symMu.Lock()
	defer c.symMu.Unlock()
	c.symbols = make(map[string][]string)
}

// loadBySymbol queries the repository and, when store is true, caches the
// outcome. Negative results are cached only when configured.
func (c *SymbolCache) loadBySymbol(family, symbol string, store bool) (*types.Descriptor, bool, error) {
	d, err := c.repo.FindBySymbol(family, symbol)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			if store && c.cfg.Negative {
				c.store.Set(symbolKey(family, symbol), nil, ttlcache.DefaultTTL)
			}
			return nil, false, nil
		}
		return nil, false, err
	}
	if store {
		c.store.Set(symbolKey(family, symbol), d, ttlcache.DefaultTTL)
	}
	return d, true, nil
}
