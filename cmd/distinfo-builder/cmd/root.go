package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/distinfo-builder/internal/logger"
	"github.com/oshokin/distinfo-builder/internal/service/builder"
	"github.com/oshokin/distinfo-builder/internal/version"
)

var (
	// configPath to the optional settings YAML file.
	configPath string

	// prefix is the installation prefix for path normalization.
	prefix string

	// sorted enables reproducible per-entry ordering in RECORD.
	sorted bool

	// logLevel is the minimum level for diagnostic output.
	logLevel string

	// rootCmd represents the base command for generating dist-info metadata.
	rootCmd = &cobra.Command{
		Use:   "distinfo-builder [dist-info-directory] [installed-file-list]",
		Short: "Generate a PEP 376 dist-info metadata directory",
		Long: "Generate the INSTALLER, METADATA and RECORD files for an installed package. " +
			"The installed-file list names the files and directories a prior install step placed on disk; " +
			"RECORD lists every one of them with a SHA-256 digest and byte size.",
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			options := &builder.Options{
				ConfigPath:        configPath,
				DistInfoDir:       args[0],
				InstalledListPath: args[1],
				Prefix:            prefix,
				Sorted:            sorted,
			}

			return builder.Run(ctx, options)
		},
	}
)

// Execute runs the distinfo-builder CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to settings file (loaded if present, effective settings saved back)")
	rootCmd.Flags().StringVarP(&prefix, "prefix", "p", "", "installation prefix consulted during path normalization")
	rootCmd.Flags().BoolVar(&sorted, "sorted", false, "sort each entry's expanded file list for reproducible RECORD output")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "minimum log level (debug, info, warn, error, fatal)")
}
