// Package store persists catalog state in a local key/value store.
//
// A KV holds opaque JSON documents under string keys. Two backends are
// provided: a gorm table (sqlite or postgres) and a bbolt file. The
// catalog Store and the preference flags are layered on top of a KV.
//
// # Error Types
//
//   - ErrNotFound: the key has never been written.
//   - ErrCorrupt: a value exists but cannot be decoded.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamecatalog/backend/internal/database"
)

// ErrNotFound indicates a key has never been written.
var ErrNotFound = errors.New("record not found")

// ErrCorrupt indicates a stored value could not be decoded.
var ErrCorrupt = errors.New("stored value is corrupt")

// Keys of the persisted records.
const (
	KeyGames        = "games"
	KeyLargeText    = "isLargeText"
	KeyHighContrast = "isHighContrast"
)

// KV is a durable string-keyed store of JSON documents.
type KV interface {
	// Get returns the raw value under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the value under key.
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// BoltScheme prefixes DSNs that address a bbolt file.
const BoltScheme = "bolt://"

// Open opens the KV backend addressed by dsn. bolt:// selects a bbolt
// file; anything else is handed to the gorm database layer.
func Open(dsn string) (KV, error) {
	if strings.HasPrefix(dsn, BoltScheme) {
		return OpenBolt(strings.TrimPrefix(dsn, BoltScheme))
	}
	db, err := database.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open kv: %w", err)
	}
	return NewGormKV(db), nil
}
