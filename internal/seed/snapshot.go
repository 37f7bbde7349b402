package seed

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

// WriteSnapshot emits a flattened serialization of the seed tree for test
// and fixture consumption: one entry per "<setName>_<symbol>", holding the
// declared attribute bag merged with the family and symbol. Entries follow
// file order, so repeated runs over identical input produce identical
// output and snapshot diffs stay meaningful.
//
// TODO: carry set-level parent references into snapshot entries; until then
// a set declaring one fails the snapshot rather than dropping it silently.
func WriteSnapshot(master *Tree, path string) error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, set := range master.Sets {
		if set.Parent != "" {
			return fmt.Errorf("snapshot does not support set-level parent (set %q declares %q)",
				set.Name, set.Parent)
		}
		familyName := types.Classify(set.Name)
		for _, e := range set.Entries {
			key := set.Name + "_" + e.Symbol
			appendPair(root, key, entryNode(familyName, e))
		}
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// entryNode builds one snapshot entry: the declared attributes in a fixed
// order, then the family and symbol.
func entryNode(familyName string, e *Entry) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if e.Attrs.Name != nil {
		appendPair(node, "name", scalar(*e.Attrs.Name))
	}
	if e.Attrs.Description != nil {
		appendPair(node, "description", scalar(*e.Attrs.Description))
	}
	if e.Attrs.Index != nil {
		appendPair(node, "index", intScalar(*e.Attrs.Index))
	}
	if e.Attrs.Value != nil {
		appendPair(node, "value", intScalar(*e.Attrs.Value))
	}
	if e.Attrs.Parent != nil {
		appendPair(node, "parent", scalar(*e.Attrs.Parent))
	}
	appendPair(node, "type", scalar(familyName))
	appendPair(node, "symbol", scalar(e.Symbol))
	return node
}

func appendPair(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, scalar(key), value)
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

func intScalar(n int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(n, 10)}
}
