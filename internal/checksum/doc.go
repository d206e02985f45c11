// Package checksum computes RECORD content digests: SHA-256 of a file's raw
// bytes, base64-url-encoded without padding.
package checksum
