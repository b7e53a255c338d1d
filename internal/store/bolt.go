package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const catalogBucket = "catalog"

// BoltKV provides a BoltDB-backed key/value store.
type BoltKV struct {
	db *bbolt.DB
}

// OpenBolt opens a BoltDB-backed store at the provided path.
func OpenBolt(path string) (*BoltKV, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	kv := &BoltKV{db: db}
	if err := kv.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return kv, nil
}

// Close closes the underlying BoltDB database.
func (s *BoltKV) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the value stored under key.
func (s *BoltKV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("key is required")
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(catalogBucket))
		if bucket == nil {
			return fmt.Errorf("catalog bucket is missing")
		}
		payload := bucket.Get([]byte(key))
		if payload == nil {
			return ErrNotFound
		}
		// bbolt values are only valid for the life of the transaction.
		value = append([]byte(nil), payload...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put replaces the value under key.
func (s *BoltKV) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is required")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(catalogBucket))
		if bucket == nil {
			return fmt.Errorf("catalog bucket is missing")
		}
		return bucket.Put([]byte(key), value)
	})
}

func (s *BoltKV) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(catalogBucket)); err != nil {
			return fmt.Errorf("create catalog bucket: %w", err)
		}
		return nil
	})
}
