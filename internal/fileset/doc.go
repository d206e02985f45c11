// Package fileset reads the installed-file list and expands its entries into
// the regular files a manifest must cover, pruning excluded directory
// subtrees along the way.
package fileset
