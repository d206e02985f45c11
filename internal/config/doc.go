// Package config defines the builder settings and provides helpers to load,
// validate and save them in YAML format.
//
// The Config type holds the installation prefix used for path normalization,
// the directory names excluded from manifests, and the output ordering mode.
package config
