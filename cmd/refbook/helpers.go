// Shared wiring and output helpers for the refbook commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/mesh-intelligence/refbook/internal/cache"
	"github.com/mesh-intelligence/refbook/internal/family"
	"github.com/mesh-intelligence/refbook/internal/locale"
	"github.com/mesh-intelligence/refbook/internal/seed"
	"github.com/mesh-intelligence/refbook/internal/sqlite"
	"github.com/mesh-intelligence/refbook/pkg/types"
)

// stack bundles the wired lookup components for a command invocation.
type stack struct {
	backend  *sqlite.Backend
	cache    *cache.SymbolCache
	registry *family.Registry
	resolver *locale.Resolver
}

// openStack opens the repository and wires the cache, family registry, and
// locale resolver on top of it. The caller must Close the stack when done.
func openStack() (*stack, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	backend, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, err
	}

	symCache := cache.New(backend, cfg.Cache)
	registry := family.NewRegistry(symCache)
	for _, name := range cfg.Families {
		registry.Register(name)
	}

	localesDir, err := resolveLocalesDir()
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Sets declared in the master locale file register their families in
	// addition to the configured ones. A missing file is fine; lookup-only
	// deployments list families in the config instead.
	if master, err := seed.NewSource(localesDir).Load(cfg.MasterLocale); err == nil {
		for _, set := range master.Sets {
			registry.Register(types.Classify(set.Name))
		}
	}
	catalog, err := locale.NewFileCatalog(localesDir, catalogLocales()...)
	if err != nil {
		backend.Close()
		return nil, err
	}
	resolver := locale.NewResolver(catalog, cfg.ActiveLocale)

	return &stack{
		backend:  backend,
		cache:    symCache,
		registry: registry,
		resolver: resolver,
	}, nil
}

// Close releases the stack's resources.
func (s *stack) Close() error {
	s.cache.Stop()
	return s.backend.Close()
}

// catalogLocales lists the locales the catalog should load: the master, the
// alternatives, and the active locale, deduplicated in that order.
func catalogLocales() []string {
	locales := []string{cfg.MasterLocale}
	for _, l := range cfg.LocaleAlternatives {
		if !slices.Contains(locales, l) {
			locales = append(locales, l)
		}
	}
	if active := cfg.ActiveLocale(); !slices.Contains(locales, active) {
		locales = append(locales, active)
	}
	return locales
}

// descriptorView is the JSON shape of a descriptor with localized text
// applied.
type descriptorView struct {
	ID          int64  `json:"id"`
	Family      string `json:"family"`
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Index       int64  `json:"index"`
	Value       *int64 `json:"value,omitempty"`
	Parent      string `json:"parent,omitempty"`
}

func viewOf(d *types.Descriptor, resolver *locale.Resolver) descriptorView {
	v := descriptorView{
		ID:          d.ID,
		Family:      d.Family,
		Symbol:      d.Symbol,
		Name:        resolver.Name(d),
		Description: resolver.Description(d),
		Index:       d.Index,
		Value:       d.Value,
	}
	if d.Parent != nil {
		v.Parent = fmt.Sprintf("%s/%d", d.Parent.Family, d.Parent.ID)
	}
	return v
}

// printDescriptors writes descriptors to stdout, as a JSON array when --json
// is set and as aligned text lines otherwise.
func printDescriptors(resolver *locale.Resolver, ds ...*types.Descriptor) error {
	if flagJSON {
		views := make([]descriptorView, 0, len(ds))
		for _, d := range ds {
			views = append(views, viewOf(d, resolver))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}
	for _, d := range ds {
		v := viewOf(d, resolver)
		fmt.Printf("%-6d %-20s %-24s %s\n", v.ID, v.Family, v.Symbol, v.Name)
		if v.Description != "" {
			fmt.Printf("       %s\n", v.Description)
		}
	}
	return nil
}
