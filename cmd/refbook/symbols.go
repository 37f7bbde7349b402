package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols <family>",
	Short: "Print a family's symbols, in index order",
	Args:  cobra.ExactArgs(1),
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
		symbols, ok, err := fam.Symbols()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "no descriptors seeded for family %s\n", fam.Name())
			return nil
		}

		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(symbols)
		}
		for _, s := range symbols {
			fmt.Println(s)
		}
		return nil
	},
}
