package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mansson/poshell/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	orig := os.Getenv("HOME")
	os.Setenv("HOME", home)
	t.Cleanup(func() { os.Setenv("HOME", orig) })
	return home
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, 1000, cfg.HistorySize)
	assert.Empty(t, cfg.HistoryFile)
}

func TestDir(t *testing.T) {
	home := withHome(t)
	dir, err := config.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".poshell"), dir)
}

func TestLoad_NoFilePresent(t *testing.T) {
	withHome(t)
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	withHome(t)

	cfg := config.Default()
	cfg.Theme = "dark"
	cfg.HistorySize = 500
	require.NoError(t, config.Save(cfg))

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Theme)
	assert.Equal(t, 500, loaded.HistorySize)
}

func TestLoad_EnvHistFileOverride(t *testing.T) {
	withHome(t)

	override := filepath.Join(t.TempDir(), "custom-history")
	os.Setenv("POSHELL_HISTFILE", override)
	defer os.Unsetenv("POSHELL_HISTFILE")

	cfg, err := config.Load()
	require.NoError(t, err)

	path, err := cfg.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, override, path)
}

func TestHistoryPath_DefaultsUnderConfigDir(t *testing.T) {
	home := withHome(t)
	cfg := config.Default()

	path, err := cfg.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".poshell", "history"), path)
}
