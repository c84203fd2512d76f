// Package kvstore persists typed values in a synchronous, string-keyed store.
//
// A Store holds raw bytes. The Adapter layered on top encodes values with a
// Codec and degrades every failure to "use the default" on load and "keep
// going" on save, so callers can treat persistence as best-effort.
package kvstore

import (
	"errors"
	"strings"
)

// ErrInvalidKey is returned for keys a store cannot map to a location.
var ErrInvalidKey = errors.New("invalid key")

// Store is an opaque synchronous key-value store.
type Store interface {
	// Get returns the raw value for key.
	// ok is false if the key has never been written.
	Get(key string) (value []byte, ok bool, err error)

	// Set replaces the value for key.
	Set(key string, value []byte) error
}

// ValidateKey reports whether key can be stored.
// Keys must be non-empty, must not start with a dot and must not contain
// path separators.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if strings.HasPrefix(key, ".") || strings.ContainsAny(key, `/\`) {
		return ErrInvalidKey
	}
	return nil
}
