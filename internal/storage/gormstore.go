package storage

import (
	"encoding/json"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvEntry is the single-table layout backing the SQLite store: one row per
// persisted key, value held as a JSON blob.
type kvEntry struct {
	Key   string `gorm:"primaryKey;size:100"`
	Value []byte
}

// TableName returns the table name for the kvEntry model
func (kvEntry) TableName() string {
	return "kv_entries"
}

// GormStore persists keys in a SQLite database through GORM. It keeps the
// same blob-per-key layout as the file store, just inside one database file.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens (or creates) the SQLite database at path and migrates
// the key/value table. Use ":memory:" for an in-memory database.
func NewGormStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Get unmarshals the blob stored under key into out, reporting false when
// the row does not exist.
func (s *GormStore) Get(key string, out interface{}) (bool, error) {
	var entry kvEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(entry.Value, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// Set upserts the blob stored under key.
func (s *GormStore) Set(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&kvEntry{Key: key, Value: data}).Error
}

// Delete removes the row stored under key, if any.
func (s *GormStore) Delete(key string) error {
	return s.db.Delete(&kvEntry{}, "key = ?", key).Error
}
