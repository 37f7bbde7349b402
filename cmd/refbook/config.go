// Config loading for the refbook CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

const (
	configFileName    = "config"
	configFileType    = "yaml"
	defaultConfigFile = "config.yaml"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Refbook CLI configuration

# Authoritative seed locale; alternatives are validated against it.
master_locale: en

# Alternative locales that must mirror the master.
# locale_alternatives: [nb]

# Active display locale (optional; overridable by --locale flag)
# locale:

# Registered descriptor families in addition to those found in seed files.
# families: [Role, Status]

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Locales directory (optional; overridable by --locales-dir flag)
# locales_dir:

cache:
  enabled: true
  # Families that bypass the cache.
  # disabled: []
  # Entry lifetime in seconds; 0 means no expiry.
  ttl_seconds: 0
  # Cache "symbol absent" results as well.
  negative: false

seed:
  verbose: false
  snapshot: false
  # snapshot_path: fixtures/descriptors.yml
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper, creating the directory and a default config.yaml on first run. A
// missing config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault("master_locale", "en")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl_seconds", 0)
	v.SetDefault("cache.negative", false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		DataDir:            v.GetString("data_dir"),
		LocalesDir:         v.GetString("locales_dir"),
		MasterLocale:       v.GetString("master_locale"),
		LocaleAlternatives: v.GetStringSlice("locale_alternatives"),
		Locale:             v.GetString("locale"),
		Families:           v.GetStringSlice("families"),
		Cache: types.CacheConfig{
			Enabled:    v.GetBool("cache.enabled"),
			Disabled:   v.GetStringSlice("cache.disabled"),
			TTLSeconds: v.GetInt("cache.ttl_seconds"),
			Negative:   v.GetBool("cache.negative"),
		},
		Seed: types.SeedConfig{
			Verbose:      v.GetBool("seed.verbose"),
			Snapshot:     v.GetBool("seed.snapshot"),
			SnapshotPath: v.GetString("seed.snapshot_path"),
		},
	}
	return cfg, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, defaultConfigFile)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
