package pathnorm

import (
	"os"
	"path/filepath"
	"strings"
)

// rule is one normalization strategy: a predicate deciding whether the rule
// applies and a transform producing the manifest-relative name.
type rule struct {
	// match reports whether the rule applies to the path.
	match func(path string) bool
	// apply rewrites the path. It is only called when match returned true.
	apply func(path string) string
}

// Chain normalizes file paths into manifest-relative names by trying an
// ordered list of rules, first match wins. Paths nothing matches stay
// verbatim. All results use forward slashes.
type Chain struct {
	rules []rule
}

// New builds the normalization chain for a dist-info directory:
//
//  1. paths under the dist-info directory's parent are stripped of that
//     parent prefix, yielding a path relative to the installation root;
//  2. paths under the installation prefix are made relative to the dist-info
//     parent instead (skipped when no prefix is configured);
//  3. anything else passes through verbatim.
func New(distInfoParent, installPrefix string) *Chain {
	var (
		separator = string(os.PathSeparator)
		rules     = make([]rule, 0, 2)
	)

	if distInfoParent != "" && distInfoParent != "." {
		parentPrefix := strings.TrimSuffix(distInfoParent, separator) + separator

		rules = append(rules, rule{
			match: func(path string) bool {
				return strings.HasPrefix(path, parentPrefix)
			},
			apply: func(path string) string {
				return strings.TrimPrefix(path, parentPrefix)
			},
		})
	}

	if installPrefix != "" {
		prefix := strings.TrimSuffix(installPrefix, separator) + separator

		rules = append(rules, rule{
			match: func(path string) bool {
				return strings.HasPrefix(path, prefix)
			},
			apply: func(path string) string {
				rel, err := filepath.Rel(distInfoParent, path)
				if err != nil {
					// Rel is lexical; a failure means the path cannot be
					// expressed relative to the parent, so keep it as is.
					return path
				}

				return rel
			},
		})
	}

	return &Chain{rules: rules}
}

// Normalize rewrites one file path into its manifest-relative name.
func (c *Chain) Normalize(path string) string {
	for _, r := range c.rules {
		if r.match(path) {
			return filepath.ToSlash(r.apply(path))
		}
	}

	return filepath.ToSlash(path)
}
