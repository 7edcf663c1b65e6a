package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	interfaces "gpa-tracker/internal/interfaces/infrastructure"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one row of the kv_entries table
type KVEntry struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormStore implements KVStore on top of a gorm connection
type GormStore struct {
	db     *gorm.DB
	prefix string
}

func NewGormStore(db *gorm.DB, prefix string) *GormStore {
	return &GormStore{
		db:     db,
		prefix: prefix,
	}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", s.prefix+key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", interfaces.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return entry.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := KVEntry{Key: s.prefix + key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ interfaces.KVStore = (*GormStore)(nil)
