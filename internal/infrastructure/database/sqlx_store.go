package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	interfaces "gpa-tracker/internal/interfaces/infrastructure"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	selectValueSQL = `SELECT value FROM kv_entries WHERE key = $1`
	upsertValueSQL = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
)

// SQLStore implements KVStore with plain SQL through sqlx and the pgx driver.
// It shares the kv_entries table with GormStore.
type SQLStore struct {
	db     *sqlx.DB
	prefix string
}

// NewSQLStore opens a pgx-backed sqlx connection
func NewSQLStore(config Config, prefix string) (*SQLStore, error) {
	db, err := sqlx.Connect("pgx", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(5)
	return NewSQLStoreFromDB(db, prefix), nil
}

func NewSQLStoreFromDB(db *sqlx.DB, prefix string) *SQLStore {
	return &SQLStore{
		db:     db,
		prefix: prefix,
	}
}

// RunMigrations applies the embedded migrations over the store's own pool
func (s *SQLStore) RunMigrations() error {
	db, err := NewConnectionFromDB(s.db.DB, false)
	if err != nil {
		return err
	}
	return RunMigrations(db)
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	if err := s.db.GetContext(ctx, &value, selectValueSQL, s.prefix+key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", interfaces.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, upsertValueSQL, s.prefix+key, value); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

var _ interfaces.KVStore = (*SQLStore)(nil)
