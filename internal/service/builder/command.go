package builder

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oshokin/distinfo-builder/internal/config"
	"github.com/oshokin/distinfo-builder/internal/logger"
	"github.com/oshokin/distinfo-builder/internal/version"
)

// Options contains inputs for the builder entry point.
type Options struct {
	// ConfigPath is an optional path to a settings YAML file. When set, the
	// file is loaded if present and the effective settings are saved back.
	ConfigPath string
	// DistInfoDir is the dist-info directory to (re)create, named
	// <package>-<version>.dist-info.
	DistInfoDir string
	// InstalledListPath is the plain-text list of installed files and
	// directories, one path per line.
	InstalledListPath string
	// Prefix overrides the configured installation prefix when non-empty.
	Prefix string
	// Sorted forces reproducible per-entry ordering in RECORD.
	Sorted bool
}

// Run executes the dist-info generation workflow.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "distinfo-builder")

	logger.InfoKV(ctx, "Starting dist-info generation",
		"version", version.Short(),
		"dist_info_dir", opts.DistInfoDir)

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	svc, err := newService(opts, cfg)
	if err != nil {
		return fmt.Errorf("initialize builder: %w", err)
	}

	if err = svc.run(ctx); err != nil {
		return fmt.Errorf("builder failed: %w", err)
	}

	logger.Info(ctx, "Builder completed successfully")

	return nil
}

// resolveConfig loads settings when a config path is provided, applies
// command-line overrides, and persists the effective settings back.
func resolveConfig(opts *Options) (*config.Config, error) {
	cfg := config.Default()

	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)

		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, os.ErrNotExist):
			// First run with a fresh config path, defaults apply.
		default:
			return nil, err
		}
	}

	if opts.Prefix != "" {
		cfg.Prefix = opts.Prefix
	}

	if opts.Sorted {
		cfg.Sorted = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if opts.ConfigPath != "" {
		if err := config.Save(opts.ConfigPath, cfg); err != nil {
			return nil, fmt.Errorf("save settings: %w", err)
		}
	}

	return cfg, nil
}
