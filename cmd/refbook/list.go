package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/refbook/internal/family"
	"github.com/mesh-intelligence/refbook/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list <family> [symbol...]",
	Short: "List a family's descriptors, in index order",
	Long: `List prints every descriptor of the family, or only the named
symbols in the order given. Unknown symbols among the arguments fail the
command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := openStack()
		if err != nil {
			return err
		}
		defer stack.Close()

		fam, err := stack.registry.Family(args[0])
		if err != nil {
			return err
		}

		if len(args) > 1 {
			ds, err := listedDescriptors(fam, args[1:])
			if err != nil {
				return err
			}
			return printDescriptors(stack.resolver, ds...)
		}

		ds, err := stack.backend.FindWhere(fam.Name(), nil)
		if err != nil {
			return err
		}
		return printDescriptors(stack.resolver, ds...)
	},
}

// listedDescriptors resolves the requested symbols in the caller's order.
// Collection leaves a nil slot for an unknown symbol; here an unknown symbol
// fails the command instead of printing a gap.
func listedDescriptors(fam *family.Family, symbols []string) ([]*types.Descriptor, error) {
	ds, err := fam.Collection(symbols...)
	if err != nil {
		return nil, err
	}
	for i, d := range ds {
		if d == nil {
			return nil, fmt.Errorf("%w: %s.%s", types.ErrUnknownSymbol, fam.Name(), symbols[i])
		}
	}
	return ds, nil
}
