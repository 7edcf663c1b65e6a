package database

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"gpa-tracker/pkg/logger"

	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

type Migration struct {
	ID          string
	Description string
	SQL         string
	AppliedAt   *time.Time
}

type MigrationRunner struct {
	db    *gorm.DB
	files fs.FS
}

// NewMigrationRunner runs the .sql files found at the root of files
func NewMigrationRunner(db *gorm.DB, files fs.FS) *MigrationRunner {
	return &MigrationRunner{
		db:    db,
		files: files,
	}
}

// NewEmbeddedMigrationRunner runs the migrations compiled into the binary
func NewEmbeddedMigrationRunner(db *gorm.DB) (*MigrationRunner, error) {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	return NewMigrationRunner(db, sub), nil
}

func (mr *MigrationRunner) createMigrationsTable() error {
	sql := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		id VARCHAR(255) PRIMARY KEY,
		description TEXT NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	return mr.db.Exec(sql).Error
}

func (mr *MigrationRunner) getAppliedMigrations() (map[string]bool, error) {
	var ids []string
	err := mr.db.Raw("SELECT id FROM schema_migrations ORDER BY id").Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(ids))
	for _, id := range ids {
		applied[id] = true
	}

	return applied, nil
}

func (mr *MigrationRunner) loadMigrations() ([]*Migration, error) {
	entries, err := fs.ReadDir(mr.files, ".")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]*Migration, 0, len(names))
	for _, name := range names {
		migration, err := mr.readMigrationFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		migrations = append(migrations, migration)
	}
	return migrations, nil
}

func (mr *MigrationRunner) readMigrationFile(name string) (*Migration, error) {
	content, err := fs.ReadFile(mr.files, name)
	if err != nil {
		return nil, err
	}

	filename := path.Base(name)
	parts := strings.SplitN(filename, "_", 2)
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid migration filename format: %s", filename)
	}

	description := strings.TrimSuffix(parts[1], ".sql")
	description = strings.ReplaceAll(description, "_", " ")

	return &Migration{
		ID:          parts[0],
		Description: description,
		SQL:         string(content),
	}, nil
}

// RunMigrations applies every migration not yet recorded in schema_migrations
func (mr *MigrationRunner) RunMigrations() (int, error) {
	if err := mr.createMigrationsTable(); err != nil {
		return 0, fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := mr.getAppliedMigrations()
	if err != nil {
		return 0, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	migrations, err := mr.loadMigrations()
	if err != nil {
		return 0, err
	}

	appliedCount := 0
	for _, migration := range migrations {
		if applied[migration.ID] {
			continue
		}

		err = mr.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(migration.SQL).Error; err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", migration.ID, err)
			}

			if err := tx.Exec("INSERT INTO schema_migrations (id, description) VALUES (?, ?)",
				migration.ID, migration.Description).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", migration.ID, err)
			}

			return nil
		})
		if err != nil {
			return appliedCount, err
		}

		logger.Info("Applied migration: %s - %s", migration.ID, migration.Description)
		appliedCount++
	}

	return appliedCount, nil
}

// GetMigrationStatus lists every known migration with its applied time, if any
func (mr *MigrationRunner) GetMigrationStatus() ([]Migration, error) {
	if err := mr.createMigrationsTable(); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := mr.getAppliedMigrations()
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	migrations, err := mr.loadMigrations()
	if err != nil {
		return nil, err
	}

	status := make([]Migration, 0, len(migrations))
	for _, migration := range migrations {
		if applied[migration.ID] {
			var appliedAt time.Time
			err := mr.db.Raw("SELECT applied_at FROM schema_migrations WHERE id = ?", migration.ID).Scan(&appliedAt).Error
			if err == nil {
				migration.AppliedAt = &appliedAt
			}
		}
		status = append(status, *migration)
	}

	return status, nil
}
