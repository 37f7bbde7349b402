package main

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <family> <symbol>",
	Short: "Look up one descriptor by family and symbol",
	Args:  cobra.ExactArgs(2),
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
		d, err := fam.Get(args[1])
		if err != nil {
			return err
		}
		return printDescriptors(stack.resolver, d)
	},
}
