package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/refbook/internal/seed"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate locale files without writing anything",
	Long: `Validate loads the master locale file and checks it for completeness,
then checks every configured alternative locale for parity with the master.
All violations are collected and reported together. Nothing is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		localesDir, err := resolveLocalesDir()
		if err != nil {
			return err
		}

		opts := seed.Options{
			MasterLocale:       cfg.MasterLocale,
			LocaleAlternatives: cfg.LocaleAlternatives,
		}
		// Validation never touches the repository or the registry.
		seeder := seed.NewSeeder(nil, nil, seed.NewSource(localesDir), slog.Default(), opts)
		if err := seeder.Validate(); err != nil {
			return err
		}
		fmt.Println("locale files valid")
		return nil
	},
}
