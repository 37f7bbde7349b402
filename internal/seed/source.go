// Package seed loads the per-locale descriptor configuration, validates it
// across locales, and performs the dependency-ordered idempotent seeding run.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/refbook/internal/paths"
)

// Attrs is the attribute bag one seed entry declares. Nil fields were absent
// from the file; upserts leave the stored values untouched for them. Parent
// holds an unparsed "<set>.<symbol>" override.
type Attrs struct {
	Name        *string
	Description *string
	Index       *int64
	Value       *int64
	Parent      *string
	Unknown     []string
}

// Entry is one symbol's declaration within a set.
type Entry struct {
	Symbol string
	Attrs  Attrs
}

// Set is a named group of same-family descriptors declared together in one
// locale file, with an optional shared default parent reference. Sets exist
// only during the seeding run.
type Set struct {
	Name    string
	Parent  string
	Entries []*Entry
}

// Entry returns the entry with the given symbol.
func (s *Set) Entry(symbol string) (*Entry, bool) {
	for _, e := range s.Entries {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return nil, false
}

// Tree is one locale's parsed configuration. Sets keep file order; seeding
// and snapshot output both depend on it being stable.
type Tree struct {
	Locale string
	Sets   []*Set
}

// Set returns the named set.
func (t *Tree) Set(name string) (*Set, bool) {
	for _, s := range t.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// RemoveSet removes and returns the named set, preserving the order of the
// rest. Used when hoisting parent sets out of the seeding pool.
func (t *Tree) RemoveSet(name string) (*Set, bool) {
	for i, s := range t.Sets {
		if s.Name == name {
			t.Sets = append(t.Sets[:i], t.Sets[i+1:]...)
			return s, true
		}
	}
	return nil, false
}

// Source loads locale configuration trees from the locales directory.
type Source struct {
	localesDir string
}

// NewSource returns a Source over the given locales directory.
func NewSource(localesDir string) *Source {
	return &Source{localesDir: localesDir}
}

// Load locates and parses the descriptor file for a locale. A file missing
// at every candidate location returns an error wrapping ErrConfigMissing.
func (s *Source) Load(locale string) (*Tree, error) {
	path, err := paths.LocateLocaleFile(s.localesDir, locale)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	tree, err := parseTree(raw, locale)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tree, nil
}

// parseTree decodes one locale document. The yaml node API is used instead
// of map decoding so set and entry order survive the parse.
func parseTree(raw []byte, locale string) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document is not a mapping")
	}

	localeNode, ok := mappingValue(doc.Content[0], locale)
	if !ok {
		return nil, fmt.Errorf("no %q section", locale)
	}
	descriptorsNode, ok := mappingValue(localeNode, "descriptors")
	if !ok {
		return nil, fmt.Errorf("no descriptors section under %q", locale)
	}

	tree := &Tree{Locale: locale}
	for i := 0; i < len(descriptorsNode.Content); i += 2 {
		setName := descriptorsNode.Content[i].Value
		set, err := parseSet(setName, descriptorsNode.Content[i+1])
		if err != nil {
			return nil, err
		}
		tree.Sets = append(tree.Sets, set)
	}
	return tree, nil
}

// parseSet decodes one descriptor set: an optional set-level parent plus one
// entry per symbol, in file order.
func parseSet(name string, node *yaml.Node) (*Set, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("set %q is not a mapping", name)
	}

	set := &Set{Name: name}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		if key == "parent" {
			if err := val.Decode(&set.Parent); err != nil {
				return nil, fmt.Errorf("set %q: parent: %w", name, err)
			}
			continue
		}

		attrs, err := parseAttrs(val)
		if err != nil {
			return nil, fmt.Errorf("set %q, symbol %q: %w", name, key, err)
		}
		set.Entries = append(set.Entries, &Entry{Symbol: key, Attrs: attrs})
	}
	return set, nil
}

// parseAttrs decodes one entry's attribute bag. Unrecognized keys are kept
// aside for the validator to report.
func parseAttrs(node *yaml.Node) (Attrs, error) {
	var attrs Attrs
	if node.Kind != yaml.MappingNode {
		return attrs, fmt.Errorf("entry is not a mapping")
	}

	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		switch key {
		case "name":
			if err := decodeString(val, &attrs.Name); err != nil {
				return attrs, fmt.Errorf("name: %w", err)
			}
		case "description":
			if err := decodeString(val, &attrs.Description); err != nil {
				return attrs, fmt.Errorf("description: %w", err)
			}
		case "index":
			if err := decodeInt(val, &attrs.Index); err != nil {
				return attrs, fmt.Errorf("index: %w", err)
			}
		case "value":
			if err := decodeInt(val, &attrs.Value); err != nil {
				return attrs, fmt.Errorf("value: %w", err)
			}
		case "parent":
			if err := decodeString(val, &attrs.Parent); err != nil {
				return attrs, fmt.Errorf("parent: %w", err)
			}
		default:
			attrs.Unknown = append(attrs.Unknown, key)
		}
	}
	return attrs, nil
}

func decodeString(node *yaml.Node, out **string) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*out = &s
	return nil
}

func decodeInt(node *yaml.Node, out **int64) error {
	var n int64
	if err := node.Decode(&n); err != nil {
		return err
	}
	*out = &n
	return nil
}

// mappingValue returns the value node for a key in a mapping node.
func mappingValue(node *yaml.Node, key string) (*yaml.Node, bool) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1], true
		}
	}
	return nil, false
}
