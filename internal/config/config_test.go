package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks exclude entry validation and enforced defaults.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Nil config.
	err := Validate(nil)
	require.Error(t, err)

	// Bad exclude entry with a separator.
	cfg := &Config{
		ExcludeDirs: []string{"build/cache"},
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Empty exclude entry.
	cfg = &Config{
		ExcludeDirs: []string{""},
	}

	err = Validate(cfg)
	require.Error(t, err)

	// The bytecode cache exclusion is always enforced.
	cfg = &Config{
		ExcludeDirs: []string{".git"},
	}

	require.NoError(t, Validate(cfg))
	require.Contains(t, cfg.ExcludeDirs, "__pycache__")
	require.Contains(t, cfg.ExcludeDirs, ".git")
}

// TestDefault ensures the default settings keep the historical exclusions.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Equal(t, []string{"__pycache__"}, cfg.ExcludeDirs)
	require.Empty(t, cfg.Prefix)
	require.False(t, cfg.Sorted)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		Prefix:      dir,
		ExcludeDirs: []string{"__pycache__", ".mypy_cache"},
		Sorted:      true,
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Prefix, loaded.Prefix)
	require.Equal(t, cfg.ExcludeDirs, loaded.ExcludeDirs)
	require.True(t, loaded.Sorted)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
