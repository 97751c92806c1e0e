package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/spec-kit/library-catalog/internal/config"
)

// Sqlite wraps access to the single-file catalog database.
type Sqlite struct {
	DB *sql.DB
}

// NewSqlite opens the database file, applies pragmas suitable for a single
// concurrent writer workload, and runs embedded migrations.
func NewSqlite(ctx context.Context, cfg config.SqliteConfig, logger *zap.Logger) (*Sqlite, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := filepath.Clean(cfg.Path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// The driver serializes writes; a single connection avoids SQLITE_BUSY
	// churn under concurrent registrations.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := RunMigrations(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	logger.Info("opened sqlite database", zap.String("path", cfg.Path))
	return &Sqlite{DB: db}, nil
}

// Close releases the underlying database handle.
func (s *Sqlite) Close() {
	if s != nil && s.DB != nil {
		_ = s.DB.Close()
	}
}

// Handle returns the raw database handle for repositories.
func (s *Sqlite) Handle() *sql.DB {
	if s == nil {
		return nil
	}
	return s.DB
}

// Ping verifies database connectivity.
func (s *Sqlite) Ping(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("sqlite not configured")
	}
	return s.DB.PingContext(ctx)
}
