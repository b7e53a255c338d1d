package models

import (
	"time"

	"gorm.io/datatypes"
)

// Entry is one record of the local key/value store.
type Entry struct {
	Key       string         `gorm:"primaryKey;size:255"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName keeps the table name stable across backends.
func (Entry) TableName() string { return "kv_entries" }
