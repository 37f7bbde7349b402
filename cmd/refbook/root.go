// Root command for the refbook CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/refbook/internal/paths"
	"github.com/mesh-intelligence/refbook/pkg/refbook"
	"github.com/mesh-intelligence/refbook/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir  string
	flagDataDir    string
	flagLocalesDir string
	flagLocale     string
	flagVerbose    bool
	flagJSON       bool
)

// cfg holds the configuration loaded by PersistentPreRunE, with flag
// overrides already applied.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:     "refbook",
	Short:   "Refbook manages symbol-addressed reference data",
	Version: refbook.Version,
	Long: `Refbook stores small, mostly-static reference data sets (roles,
statuses, categories) addressed by stable symbolic keys, seeds them from
per-locale YAML files, and serves cached symbol lookups.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		loaded, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		cfg = loaded

		if flagLocale != "" {
			cfg.Locale = flagLocale
		}
		if flagVerbose {
			cfg.Seed.Verbose = true
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level := slog.LevelInfo
		if cfg.Seed.Verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.refbook-db)")
	rootCmd.PersistentFlags().StringVar(&flagLocalesDir, "locales-dir", "", "locales directory (default: $(CWD)/locales)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "active display locale (default: master locale)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "verbose seeding progress output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(symbolsCmd)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config data_dir > REFBOOK_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cfg.DataDir)
}

// resolveLocalesDir returns the locales directory following the precedence
// chain: --locales-dir flag > config locales_dir > REFBOOK_LOCALES_DIR env >
// default.
func resolveLocalesDir() (string, error) {
	return paths.ResolveLocalesDir(flagLocalesDir, cfg.LocalesDir)
}
