package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/refbook/internal/seed"
)

var (
	flagSnapshot     bool
	flagSnapshotPath string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed descriptors from the master locale file",
	Long: `Seed loads the master locale file, validates it together with every
configured alternative locale, and upserts the descriptor sets into the
database. Parent sets are seeded first so references between sets resolve.
Reruns converge: existing rows are updated in place, never duplicated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := openStack()
		if err != nil {
			return err
		}
		defer stack.Close()

		localesDir, err := resolveLocalesDir()
		if err != nil {
			return err
		}

		opts := seed.Options{
			MasterLocale:       cfg.MasterLocale,
			LocaleAlternatives: cfg.LocaleAlternatives,
			Snapshot:           cfg.Seed.Snapshot,
			SnapshotPath:       cfg.Seed.SnapshotPath,
		}
		if flagSnapshot {
			opts.Snapshot = true
		}
		if flagSnapshotPath != "" {
			opts.Snapshot = true
			opts.SnapshotPath = flagSnapshotPath
		}

		seeder := seed.NewSeeder(stack.backend, stack.registry, seed.NewSource(localesDir), slog.Default(), opts)
		return seeder.Run()
	},
}

func init() {
	seedCmd.Flags().BoolVar(&flagSnapshot, "snapshot", false, "write a fixture snapshot of the master locale")
	seedCmd.Flags().StringVar(&flagSnapshotPath, "snapshot-path", "", "fixture snapshot output path (implies --snapshot)")
}
