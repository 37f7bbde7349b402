package types

import "errors"

// Config holds the runtime switches refbook consumes but does not own:
// directories, locale tags, per-family caching, and seeding output.
type Config struct {
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	LocalesDir string `json:"locales_dir" yaml:"locales_dir"`

	// MasterLocale is the authoritative seed locale; every alternative is
	// validated against it.
	MasterLocale       string   `json:"master_locale" yaml:"master_locale"`
	LocaleAlternatives []string `json:"locale_alternatives" yaml:"locale_alternatives"`

	// Locale is the ambient read-time locale. Empty means MasterLocale.
	Locale string `json:"locale" yaml:"locale"`

	// Families lists the registered descriptor families, e.g. ["Role"].
	// Sets found in seed files are registered in addition to these.
	Families []string `json:"families" yaml:"families"`

	Cache CacheConfig `json:"cache" yaml:"cache"`
	Seed  SeedConfig  `json:"seed" yaml:"seed"`
}

// CacheConfig controls the symbol cache.
type CacheConfig struct {
	// Enabled is the process-wide default; Disabled lists families that
	// bypass the cache regardless.
	Enabled  bool     `json:"enabled" yaml:"enabled"`
	Disabled []string `json:"disabled" yaml:"disabled"`

	// TTLSeconds bounds entry lifetime; zero means no expiry.
	TTLSeconds int `json:"ttl_seconds" yaml:"ttl_seconds"`

	// Negative caches "symbol absent" results as well. An implementation
	// choice, not a contract; off by default.
	Negative bool `json:"negative" yaml:"negative"`
}

// SeedConfig controls the seeding run.
type SeedConfig struct {
	Verbose      bool   `json:"verbose" yaml:"verbose"`
	Snapshot     bool   `json:"snapshot" yaml:"snapshot"`
	SnapshotPath string `json:"snapshot_path" yaml:"snapshot_path"`
}

// Config validation errors.
var (
	ErrMasterLocaleEmpty = errors.New("master_locale must not be empty")
	ErrCacheTTLInvalid   = errors.New("cache ttl_seconds must not be negative")
)

// ErrConfigMissing reports that no descriptor file exists at any candidate
// location for a locale. Fatal at seed time; configuration absence is a
// deployment error.
var ErrConfigMissing = errors.New("descriptor configuration missing")

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.MasterLocale == "" {
		return ErrMasterLocaleEmpty
	}
	if c.Cache.TTLSeconds < 0 {
		return ErrCacheTTLInvalid
	}
	return nil
}

// ActiveLocale returns the read-time locale, falling back to the master.
func (c Config) ActiveLocale() string {
	if c.Locale != "" {
		return c.Locale
	}
	return c.MasterLocale
}

// CachingEnabled reports whether the symbol cache serves the given family.
func (c CacheConfig) CachingEnabled(family string) bool {
	if !c.Enabled {
		return false
	}
	for _, f := range c.Disabled {
		if f == family {
			return false
		}
	}
	return true
}
