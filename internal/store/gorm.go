package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamecatalog/backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKV stores entries in the kv_entries table.
type GormKV struct {
	db *gorm.DB
}

// NewGormKV wraps an already migrated database.
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

// Get returns the value stored under key.
func (s *GormKV) Get(ctx context.Context, key string) ([]byte, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("key is required")
	}

	var entry models.Entry
	err := s.db.WithContext(ctx).Where(&models.Entry{Key: key}).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

// Put upserts the value under key.
func (s *GormKV) Put(ctx context.Context, key string, value []byte) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is required")
	}

	entry := models.Entry{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *GormKV) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
