// Package builder generates a PEP 376 dist-info directory for an installed
// package.
//
// It resets the target directory, writes INSTALLER and METADATA, and builds
// the RECORD manifest listing every installed file with its SHA-256 digest
// and byte size. The pass is strictly linear: any I/O failure aborts the run
// and a re-run regenerates everything from scratch.
package builder
