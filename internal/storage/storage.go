// Package storage provides durable key-value slots for persisted records.
//
// A Slot stores opaque byte values under string keys. The settings store
// is the only writer; everything else reads through it.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Read when nothing is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Slot is a named durable location holding serialized records.
type Slot interface {
	// Read returns the bytes stored under key, or ErrNotFound.
	Read(key string) ([]byte, error)
	// Write replaces the bytes stored under key.
	Write(key string, data []byte) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns a Slot for the named backend. path is a directory for the
// file backend and a database file for sqlite; memory ignores it.
func Open(backend, path string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFileSlot(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemorySlot(), nil
	}
	return nil, fmt.Errorf("storage: unknown backend %q", backend)
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("storage: key is empty")
	}
	if key != filepath.Base(key) || key == "." || key == ".." {
		return fmt.Errorf("storage: invalid key %q", key)
	}
	return nil
}
