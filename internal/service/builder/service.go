package builder

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/distinfo-builder/internal/checksum"
	"github.com/oshokin/distinfo-builder/internal/config"
	"github.com/oshokin/distinfo-builder/internal/domain/distinfo"
	"github.com/oshokin/distinfo-builder/internal/fileset"
	"github.com/oshokin/distinfo-builder/internal/logger"
	"github.com/oshokin/distinfo-builder/internal/pathnorm"
)

// defaultFileMode is used for generated metadata files.
const defaultFileMode os.FileMode = 0o644

// service generates one dist-info directory.
// It is unexported, callers should use Run, which encapsulates setup and validation.
type service struct {
	// cfg holds the effective builder settings.
	cfg *config.Config
	// distInfoDir is the target metadata directory.
	distInfoDir string
	// listPath is the installed-file list location.
	listPath string
	// pkgName and pkgVersion are derived from the directory's base name.
	pkgName    string
	pkgVersion string
}

// newService creates a builder service and derives the package identity from
// the directory name, so a malformed name fails before anything is deleted.
func newService(opts *Options, cfg *config.Config) (*service, error) {
	name, version, err := distinfo.SplitNameVersion(opts.DistInfoDir)
	if err != nil {
		return nil, err
	}

	return &service{
		cfg:         cfg,
		distInfoDir: filepath.Clean(opts.DistInfoDir),
		listPath:    opts.InstalledListPath,
		pkgName:     name,
		pkgVersion:  version,
	}, nil
}

// run performs the whole generation pass: read the installed list, reset the
// directory, emit INSTALLER and METADATA, then write the RECORD manifest.
func (s *service) run(ctx context.Context) error {
	entries, err := fileset.ReadList(s.listPath)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Read installed-file list",
		"path", s.listPath,
		"entries", len(entries))

	if err = s.materializeDir(ctx); err != nil {
		return err
	}

	// Generated files join the installed list so RECORD covers them too.
	installerPath, err := s.writeInstaller()
	if err != nil {
		return err
	}

	entries = append(entries, installerPath)

	metadataPath, err := s.writeMetadata()
	if err != nil {
		return err
	}

	entries = append(entries, metadataPath)

	return s.writeRecord(ctx, entries)
}

// materializeDir resets the target directory: delete-if-exists, recreate.
// Re-runs therefore never accumulate stale files from a previous build.
func (s *service) materializeDir(ctx context.Context) error {
	if _, err := os.Stat(s.distInfoDir); err == nil {
		logger.InfoKV(ctx, "Removing existing directory", "path", s.distInfoDir)

		if err = os.RemoveAll(s.distInfoDir); err != nil {
			return fmt.Errorf("delete existing %s: %w", s.distInfoDir, err)
		}
	}

	if err := os.Mkdir(s.distInfoDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.distInfoDir, err)
	}

	return nil
}

// writeInstaller emits the fixed provenance file and returns its path.
func (s *service) writeInstaller() (string, error) {
	path := filepath.Join(s.distInfoDir, distinfo.InstallerFilename)

	if err := os.WriteFile(path, []byte(distinfo.InstallerToken+"\n"), defaultFileMode); err != nil {
		return "", fmt.Errorf("write %s: %w", distinfo.InstallerFilename, err)
	}

	return path, nil
}

// writeMetadata emits the METADATA header fields and returns the file path.
func (s *service) writeMetadata() (string, error) {
	path := filepath.Join(s.distInfoDir, distinfo.MetadataFilename)
	contents := distinfo.Metadata(s.pkgName, s.pkgVersion)

	if err := os.WriteFile(path, []byte(contents), defaultFileMode); err != nil {
		return "", fmt.Errorf("write %s: %w", distinfo.MetadataFilename, err)
	}

	return path, nil
}

// writeRecord expands the installed entries, hashes every file and streams the
// manifest lines through a single writer, ending with the self entry.
func (s *service) writeRecord(ctx context.Context, entries []string) error {
	files, err := fileset.Expand(entries, s.cfg.ExcludeDirs, s.cfg.Sorted)
	if err != nil {
		return err
	}

	chain := pathnorm.New(filepath.Dir(s.distInfoDir), s.cfg.Prefix)

	recordPath := filepath.Join(s.distInfoDir, distinfo.RecordFilename)

	recordFile, err := os.OpenFile(filepath.Clean(recordPath), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultFileMode)
	if err != nil {
		return fmt.Errorf("create %s: %w", distinfo.RecordFilename, err)
	}
	defer func() {
		// Best-effort cleanup, write errors are already handled below.
		_ = recordFile.Close()
	}()

	var (
		writer      = bufio.NewWriter(recordFile)
		totalHashed int64
	)

	for _, file := range files {
		digest, size, err := checksum.File(file)
		if err != nil {
			return err
		}

		entry := distinfo.Entry{
			Path:   chain.Normalize(file),
			Digest: digest,
			Size:   size,
		}

		if _, err = writer.WriteString(entry.String() + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", distinfo.RecordFilename, err)
		}

		totalHashed += size
	}

	self := distinfo.SelfEntry(filepath.Base(s.distInfoDir))
	if _, err = writer.WriteString(self.String() + "\n"); err != nil {
		return fmt.Errorf("write %s: %w", distinfo.RecordFilename, err)
	}

	if err = writer.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", distinfo.RecordFilename, err)
	}

	if err = recordFile.Close(); err != nil {
		return fmt.Errorf("close %s: %w", distinfo.RecordFilename, err)
	}

	logger.InfoKV(ctx, "Wrote manifest",
		"path", recordPath,
		"files", len(files),
		"bytes_hashed", totalHashed)

	return nil
}
