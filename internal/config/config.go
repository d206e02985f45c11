package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings steering manifest generation.
type Config struct {
	// Prefix is the installation prefix consulted by the second path
	// normalization rule. Empty disables that rule.
	Prefix string `yaml:"prefix"`
	// ExcludeDirs lists directory names whose subtrees are skipped while
	// walking installed directories. "__pycache__" is always enforced.
	ExcludeDirs []string `yaml:"exclude_dirs"`
	// Sorted orders each input entry's expanded file list lexicographically,
	// making RECORD reproducible across platforms.
	Sorted bool `yaml:"sorted"`
}

const (
	// DefaultConfigFilename is the default filename for builder settings.
	DefaultConfigFilename = "distinfo-builder-settings.yaml"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// pycacheDirName is the bytecode cache directory excluded from manifests.
	pycacheDirName = "__pycache__"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errBadExcludeDir is returned when an exclude entry is empty or contains a path separator.
	errBadExcludeDir = errors.New("exclude entries must be bare directory names")
)

// Default returns settings matching the historical behavior:
// no installation prefix, bytecode caches excluded, walk order preserved.
func Default() *Config {
	return &Config{
		ExcludeDirs: []string{pycacheDirName},
	}
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in required defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	for _, name := range cfg.ExcludeDirs {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: %q", errBadExcludeDir, name)
		}
	}

	// Bytecode caches are never recorded, whatever the user configures.
	if !slices.Contains(cfg.ExcludeDirs, pycacheDirName) {
		cfg.ExcludeDirs = append(cfg.ExcludeDirs, pycacheDirName)
	}

	if cfg.Prefix != "" {
		cfg.Prefix = filepath.Clean(cfg.Prefix)
	}

	return nil
}
