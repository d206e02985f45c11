package distinfo

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// InstallerFilename is the provenance file inside the dist-info directory.
	InstallerFilename = "INSTALLER"
	// MetadataFilename is the package metadata file inside the dist-info directory.
	MetadataFilename = "METADATA"
	// RecordFilename is the installed-files manifest inside the dist-info directory.
	RecordFilename = "RECORD"

	// InstallerToken is the fixed provenance value. The directory is written
	// on pip's behalf, so pip is recorded as the nominal installer.
	InstallerToken = "pip"

	// MetadataVersion is the metadata format version emitted into METADATA.
	MetadataVersion = "1.1"
)

// errBadDirectoryName is returned when a dist-info directory base name does not
// contain a name-version separator.
var errBadDirectoryName = errors.New("directory name must look like <name>-<version>.dist-info")

// Entry is a single RECORD line: a slash-separated relative path with the
// content digest and byte size of the file it names.
type Entry struct {
	// Path is the manifest-relative file path using forward slashes.
	Path string
	// Digest is the base64-url SHA-256 of the file contents, without padding.
	// Empty for the self-referential RECORD entry.
	Digest string
	// Size is the file length in bytes. Ignored when Digest is empty.
	Size int64
}

// SelfEntry returns the sentinel entry RECORD appends for itself,
// with empty digest and size fields.
func SelfEntry(distInfoBase string) Entry {
	return Entry{
		Path: distInfoBase + "/" + RecordFilename,
	}
}

// String renders the entry as a RECORD line without a trailing newline.
func (e Entry) String() string {
	if e.Digest == "" {
		return e.Path + ",,"
	}

	return fmt.Sprintf("%s,sha256=%s,%d", e.Path, e.Digest, e.Size)
}

// SplitNameVersion derives the package name and version from a dist-info
// directory path. The base name is stripped of its extension at the last dot
// (".dist-info") and split at the first hyphen.
//
// A hyphen inside the version survives the split; a hyphen inside the package
// name does not. That matches the historical behavior and is deliberately not
// made smarter.
func SplitNameVersion(dir string) (name, version string, err error) {
	base := filepath.Base(dir)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	name, version, found := strings.Cut(base, "-")
	if !found || name == "" || version == "" {
		return "", "", fmt.Errorf("%w: %q", errBadDirectoryName, filepath.Base(dir))
	}

	return name, version, nil
}

// Metadata renders the METADATA file contents for the provided package
// name and version.
func Metadata(name, version string) string {
	var builder strings.Builder

	builder.WriteString("Metadata-Version: ")
	builder.WriteString(MetadataVersion)
	builder.WriteString("\nName: ")
	builder.WriteString(name)
	builder.WriteString("\nVersion: ")
	builder.WriteString(version)
	builder.WriteString("\n")

	return builder.String()
}
