package integration

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/distinfo-builder/internal/service/builder"
)

// digestOf computes a RECORD digest independently of the production code.
func digestOf(contents []byte) string {
	sum := sha256.Sum256(contents)
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// TestBuilder_GeneratesDistInfo installs a realistic package tree and verifies
// the generated directory end to end, including prefix-based normalization.
func TestBuilder_GeneratesDistInfo(t *testing.T) {
	// Layout: <root>/site-packages holds the package and the dist-info
	// directory, <root>/bin holds a script reachable only via the prefix rule.
	root := t.TempDir()
	site := filepath.Join(root, "site-packages")
	distInfoDir := filepath.Join(site, "mypkg-2.0.dist-info")

	pkgDir := filepath.Join(site, "mypkg")
	require.NoError(t, os.MkdirAll(filepath.Join(pkgDir, "__pycache__"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "__init__.py"), []byte("from .core import main\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "core.py"), []byte("def main():\n    pass\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "__pycache__", "core.pyc"), []byte("bytecode"), 0o600))

	binDir := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	scriptPath := filepath.Join(binDir, "mypkg-cli")
	require.NoError(t, os.WriteFile(scriptPath, []byte("#!/usr/bin/env python\n"), 0o700))

	listPath := filepath.Join(root, "installed.txt")
	require.NoError(t, os.WriteFile(listPath, []byte(pkgDir+"\n"+scriptPath+"\n"), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	configPath := filepath.Join(root, "settings.yaml")

	err := builder.Run(ctx, &builder.Options{
		ConfigPath:        configPath,
		DistInfoDir:       distInfoDir,
		InstalledListPath: listPath,
		Prefix:            root,
		Sorted:            true,
	})
	require.NoError(t, err)

	// The directory contains exactly the three generated files.
	dirEntries, err := os.ReadDir(distInfoDir)
	require.NoError(t, err)

	names := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		names = append(names, entry.Name())
	}

	require.ElementsMatch(t, []string{"INSTALLER", "METADATA", "RECORD"}, names)

	installer, err := os.ReadFile(filepath.Join(distInfoDir, "INSTALLER"))
	require.NoError(t, err)
	require.Equal(t, "pip\n", string(installer))

	metadata, err := os.ReadFile(filepath.Join(distInfoDir, "METADATA"))
	require.NoError(t, err)
	require.Equal(t, "Metadata-Version: 1.1\nName: mypkg\nVersion: 2.0\n", string(metadata))

	record, err := os.ReadFile(filepath.Join(distInfoDir, "RECORD"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(record), "\n"), "\n")
	require.Equal(t, []string{
		fmt.Sprintf("mypkg/__init__.py,sha256=%s,23", digestOf([]byte("from .core import main\n"))),
		fmt.Sprintf("mypkg/core.py,sha256=%s,21", digestOf([]byte("def main():\n    pass\n"))),
		fmt.Sprintf("../bin/mypkg-cli,sha256=%s,22", digestOf([]byte("#!/usr/bin/env python\n"))),
		fmt.Sprintf("mypkg-2.0.dist-info/INSTALLER,sha256=%s,4", digestOf(installer)),
		fmt.Sprintf("mypkg-2.0.dist-info/METADATA,sha256=%s,%d", digestOf(metadata), len(metadata)),
		"mypkg-2.0.dist-info/RECORD,,",
	}, lines)

	// Effective settings were persisted next to the build.
	_, err = os.Stat(configPath)
	require.NoError(t, err)

	// A second run over unchanged inputs is byte-identical.
	firstRecord := append([]byte(nil), record...)

	require.NoError(t, builder.Run(ctx, &builder.Options{
		ConfigPath:        configPath,
		DistInfoDir:       distInfoDir,
		InstalledListPath: listPath,
		Prefix:            root,
		Sorted:            true,
	}))

	secondRecord, err := os.ReadFile(filepath.Join(distInfoDir, "RECORD"))
	require.NoError(t, err)
	require.Equal(t, firstRecord, secondRecord)
}
