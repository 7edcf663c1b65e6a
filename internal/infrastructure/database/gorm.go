package database

import (
	"database/sql"
	"fmt"
	"time"

	"gpa-tracker/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Debug    bool
}

// DSN renders the libpq keyword/value connection string shared by the gorm
// and sqlx backends.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s connect_timeout=10",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode)
}

func NewConnection(config Config) (*gorm.DB, error) {
	logger.Debug("Connecting to postgres at %s:%d/%s", config.Host, config.Port, config.DBName)

	db, err := open(postgres.Open(config.DSN()), config.Debug)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// a single session writes the record, so a small pool is plenty
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// NewConnectionFromDB wraps an already open postgres pool, e.g. the one
// behind an SQLStore, so gorm-based tooling can share it.
func NewConnectionFromDB(sqlDB *sql.DB, debug bool) (*gorm.DB, error) {
	return open(postgres.New(postgres.Config{Conn: sqlDB}), debug)
}

func open(dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(logLevel),
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// RunMigrations applies the embedded migrations
func RunMigrations(db *gorm.DB) error {
	logger.Info("Running SQL migrations...")

	runner, err := NewEmbeddedMigrationRunner(db)
	if err != nil {
		return err
	}
	applied, err := runner.RunMigrations()
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations completed, %d applied", applied)
	return nil
}
