package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")
		dir, err := ResolveConfigDir("/flag/config")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config", dir)
	})

	t.Run("env beats default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")
		dir, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config", dir)
	})
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")
		dir, err := ResolveDataDir("/flag/data", "/config/data")
		require.NoError(t, err)
		assert.Equal(t, "/flag/data", dir)
	})

	t.Run("config beats env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")
		dir, err := ResolveDataDir("", "/config/data")
		require.NoError(t, err)
		assert.Equal(t, "/config/data", dir)
	})

	t.Run("env beats default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")
		dir, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/env/data", dir)
	})

	t.Run("default is cwd relative", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		dir, err := ResolveDataDir("", "")
		require.NoError(t, err)
		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, DefaultDataDirName), dir)
	})
}

func TestResolveLocalesDirPrecedence(t *testing.T) {
	t.Setenv(EnvLocalesDir, "/env/locales")

	dir, err := ResolveLocalesDir("", "")
	require.NoError(t, err)
	assert.Equal(t, "/env/locales", dir)

	dir, err = ResolveLocalesDir("", "/config/locales")
	require.NoError(t, err)
	assert.Equal(t, "/config/locales", dir)
}

func TestLocaleFileCandidates(t *testing.T) {
	got := LocaleFileCandidates("/l", "en")
	want := []string{
		filepath.Join("/l", "en", "descriptors.yml"),
		filepath.Join("/l", "en.descriptors.yml"),
		filepath.Join("/l", "en.yml"),
		filepath.Join("/l", "descriptors.yml"),
	}
	assert.Equal(t, want, got)
}

func TestLocateLocaleFile(t *testing.T) {
	t.Run("earlier candidate wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "descriptors.yml"), []byte("en:\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yml"), []byte("en:\n"), 0o644))

		path, err := LocateLocaleFile(dir, "en")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "en", "descriptors.yml"), path)
	})

	t.Run("falls through to the bare default file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "descriptors.yml"), []byte("en:\n"), 0o644))

		path, err := LocateLocaleFile(dir, "en")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "descriptors.yml"), path)
	})

	t.Run("missing everywhere reports every candidate", func(t *testing.T) {
		dir := t.TempDir()

		_, err := LocateLocaleFile(dir, "en")
		require.ErrorIs(t, err, types.ErrConfigMissing)
		for _, candidate := range LocaleFileCandidates(dir, "en") {
			assert.Contains(t, err.Error(), candidate)
		}
	})
}
