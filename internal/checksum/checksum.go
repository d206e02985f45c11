package checksum

import (
	"crypto"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// Ensure SHA256 is available for digest calculation.
	_ "crypto/sha256"
)

// Function is the hash used for RECORD digests. PEP 376 consumers expect
// SHA-256, so this is not configurable.
const Function crypto.Hash = crypto.SHA256

var errHashUnavailable = errors.New("hash function unavailable")

// File reads the whole file at path and returns its digest in RECORD form
// (base64-url without padding) together with the byte length that was hashed.
//
// Contents are read fully into memory per file; package payloads are small
// enough that streaming is not worth the complexity.
func File(path string) (digest string, size int64, err error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", 0, fmt.Errorf("read %s: %w", path, err)
	}

	digest, err = Sum(contents)
	if err != nil {
		return "", 0, err
	}

	return digest, int64(len(contents)), nil
}

// Sum returns the RECORD digest of the provided bytes.
func Sum(contents []byte) (string, error) {
	if !Function.Available() {
		return "", fmt.Errorf("digest calculation not possible: %w", errHashUnavailable)
	}

	hasher := Function.New()
	if _, err := hasher.Write(contents); err != nil {
		return "", fmt.Errorf("calculate digest: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(hasher.Sum(nil)), nil
}
