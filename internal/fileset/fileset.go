package fileset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ReadList reads the installed-file list: one path per line, UNIX or native
// line endings. Empty lines are dropped; nothing else is validated here,
// invalid paths surface later when their files are hashed.
func ReadList(path string) ([]string, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read installed list: %w", err)
	}

	rawLines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	lines := make([]string, 0, len(rawLines))

	for _, line := range rawLines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// Expand resolves each installed entry to the regular files it covers,
// preserving entry order. Directory entries are walked depth-first; any
// subdirectory whose name is in excludeDirs is pruned with its whole subtree.
// Non-directory entries pass through as singletons, so a missing path is
// reported by the digest step rather than here.
//
// With sorted set, each directory's expanded file list is ordered
// lexicographically for reproducible output. Entry order is never reordered
// because it is part of the manifest contract.
func Expand(entries, excludeDirs []string, sorted bool) ([]string, error) {
	excluded := sliceToSet(excludeDirs)

	var files []string

	for _, entry := range entries {
		entry = filepath.FromSlash(entry)

		info, err := os.Stat(entry)
		if err != nil || !info.IsDir() {
			files = append(files, entry)
			continue
		}

		expanded, err := walkDir(entry, excluded)
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", entry, err)
		}

		if sorted {
			sort.Strings(expanded)
		}

		files = append(files, expanded...)
	}

	return files, nil
}

// walkDir collects regular files beneath root, pruning excluded subdirectories.
// The root itself is never pruned, even if its own name is excluded.
func walkDir(root string, excluded map[string]struct{}) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}

			if _, skip := excluded[d.Name()]; skip {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// sliceToSet converts a slice to a set for quick lookups.
func sliceToSet[T comparable](elements []T) map[T]struct{} {
	result := make(map[T]struct{}, len(elements))
	for _, value := range elements {
		result[value] = struct{}{}
	}

	return result
}
