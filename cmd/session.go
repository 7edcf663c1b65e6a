package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"gpa-tracker/internal/config"
	"gpa-tracker/internal/domain/academic"
	"gpa-tracker/internal/infrastructure/cache"
	"gpa-tracker/internal/infrastructure/database"
	"gpa-tracker/internal/infrastructure/repository"
	interfaces "gpa-tracker/internal/interfaces/infrastructure"
	"gpa-tracker/internal/service"
	"gpa-tracker/pkg/logger"
)

func databaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.Username,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		Debug:    cfg.Database.Debug,
	}
}

// openStorage connects the KV backend selected by storage.backend
func openStorage(cfg *config.Config) (interfaces.KVStore, error) {
	switch cfg.Storage.Backend {
	case "file", "":
		return repository.NewFileStore(cfg.Storage.FilePath)
	case "memory":
		return repository.NewMemoryStore(nil), nil
	case "redis":
		return cache.NewRedisStoreWithConfig(&cfg.Cache, cfg.Storage.KeyPrefix), nil
	case "postgres":
		db, err := database.NewConnection(databaseConfig(cfg))
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			return nil, err
		}
		return database.NewGormStore(db, cfg.Storage.KeyPrefix), nil
	case "sql":
		store, err := database.NewSQLStore(databaseConfig(cfg), cfg.Storage.KeyPrefix)
		if err != nil {
			return nil, err
		}
		if err := store.RunMigrations(); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// openSession opens storage and loads the record into a new session. A load
// failure is logged and the session starts from a default record.
func openSession(ctx context.Context) (*service.RecordService, interfaces.KVStore, error) {
	cfg := config.Get()

	kv, err := openStorage(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	logger.Debug("Using %s storage", cfg.Storage.Backend)

	repo := repository.NewRecordRepository(kv, academic.GradingSystemID(cfg.Grading.DefaultSystem))
	svc := service.NewRecordService(repo, time.Now)
	if err := svc.Load(ctx); err != nil {
		logger.Warn("Continuing with a default record: %v", err)
	}
	return svc, kv, nil
}

// reportSave writes a warning to w for changes that were applied but not
// saved and passes every other error through.
func reportSave(w io.Writer, err error) error {
	if errors.Is(err, service.ErrPersistence) {
		fmt.Fprintln(w, "Warning:", err)
		return nil
	}
	return err
}

// parseSemesterNumber turns a 1-based semester number into an index
func parseSemesterNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid semester number %q", arg)
	}
	return n - 1, nil
}

func formatCredits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
