// Package distinfo models the PEP 376 dist-info directory: the generated
// file names, the RECORD entry format, and the name/version convention
// encoded in the directory's base name.
package distinfo
