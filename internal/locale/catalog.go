// Package locale resolves descriptor display attributes through a locale
// catalog, falling back to the raw stored values.
package locale

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/refbook/internal/paths"
)

// Catalog resolves (scope, attribute, locale) to a translated string.
// Implementations are read-only collaborators; absence is a normal answer.
type Catalog interface {
	Resolve(scope []string, attribute, locale string) (string, bool)
}

// FileCatalog is a Catalog over the per-locale descriptor YAML files. The
// same files that seed the repository carry the translations, under
// <locale>: descriptors: <set>: <symbol>: {name, description}.
type FileCatalog struct {
	entries map[string]string
}

// NewFileCatalog loads the descriptor files for the given locales. Locales
// without a descriptor file contribute no entries; the read path degrades to
// raw fallbacks rather than failing.
func NewFileCatalog(localesDir string, locales ...string) (*FileCatalog, error) {
	c := &FileCatalog{entries: make(map[string]string)}
	for _, loc := range locales {
		path, err := paths.LocateLocaleFile(localesDir, loc)
		if err != nil {
			continue
		}
		if err := c.loadFile(path, loc); err != nil {
			return nil, fmt.Errorf("loading catalog for locale %s: %w", loc, err)
		}
	}
	return c, nil
}

// Resolve returns the catalog entry for the scope path and attribute in the
// given locale, or ok=false when absent.
func (c *FileCatalog) Resolve(scope []string, attribute, locale string) (string, bool) {
	v, ok := c.entries[catalogKey(locale, scope, attribute)]
	return v, ok
}

// loadFile walks one locale document and records every string leaf under the
// locale's descriptors section.
func (c *FileCatalog) loadFile(path, locale string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// The set-level "parent" key is a scalar among symbol mappings, so the
	// symbol level decodes as raw nodes and scalars are skipped.
	var doc map[string]struct {
		Descriptors map[string]map[string]yaml.Node `yaml:"descriptors"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	section, ok := doc[locale]
	if !ok {
		return nil
	}
	for set, symbols := range section.Descriptors {
		for symbol, node := range symbols {
			if node.Kind != yaml.MappingNode {
				continue
			}
			var attrs map[string]any
			if err := node.Decode(&attrs); err != nil {
				return fmt.Errorf("parsing %s entry %s.%s: %w", path, set, symbol, err)
			}
			for attr, v := range attrs {
				s, ok := v.(string)
				if !ok {
					continue
				}
				scope := []string{"descriptors", set, symbol}
				c.entries[catalogKey(locale, scope, attr)] = s
			}
		}
	}
	return nil
}

// catalogKey flattens a lookup into one map key.
func catalogKey(locale string, scope []string, attribute string) string {
	return locale + ":" + strings.Join(scope, ".") + ":" + attribute
}
