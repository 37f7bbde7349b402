// Package paths resolves configuration, data, and locale directory
// locations, and locates per-locale descriptor files.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

// CWD-relative directory names.
const (
	DefaultConfigDirName  = ".refbook"
	DefaultDataDirName    = ".refbook-db"
	DefaultLocalesDirName = "locales"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir  = "REFBOOK_CONFIG_DIR"
	EnvDataDir    = "REFBOOK_DATA_DIR"
	EnvLocalesDir = "REFBOOK_LOCALES_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/refbook (fallback ~/.config/refbook)
// macOS:   ~/Library/Application Support/refbook
// Windows: %APPDATA%/refbook
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "refbook"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "refbook"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "refbook"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > REFBOOK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config value > REFBOOK_DATA_DIR env > $(CWD)/.refbook-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ResolveLocalesDir returns the locales directory following the precedence
// chain: flag > config value > REFBOOK_LOCALES_DIR env > $(CWD)/locales.
func ResolveLocalesDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvLocalesDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultLocalesDirName), nil
}

// LocaleFileCandidates lists the candidate descriptor file locations for a
// locale, in lookup order: a per-locale directory file, a per-locale flat
// file, a generic locale file, and the bare default file.
func LocaleFileCandidates(localesDir, locale string) []string {
	return []string{
		filepath.Join(localesDir, locale, "descriptors.yml"),
		filepath.Join(localesDir, locale+".descriptors.yml"),
		filepath.Join(localesDir, locale+".yml"),
		filepath.Join(localesDir, "descriptors.yml"),
	}
}

// LocateLocaleFile returns the first existing candidate for the locale. A
// locale file missing at every candidate location is a deployment error; the
// returned error lists every path tried.
func LocateLocaleFile(localesDir, locale string) (string, error) {
	candidates := LocaleFileCandidates(localesDir, locale)
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	var b strings.Builder
	for _, path := range candidates {
		fmt.Fprintf(&b, "\n\t%q", path)
	}
	return "", fmt.Errorf("%w: no descriptor file for locale %s; expected any of:%s",
		types.ErrConfigMissing, locale, b.String())
}
