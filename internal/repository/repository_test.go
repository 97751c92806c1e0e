package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/library-catalog/internal/config"
	"github.com/spec-kit/library-catalog/internal/persistence"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	store, err := persistence.NewSqlite(context.Background(), config.SqliteConfig{
		Path: filepath.Join(t.TempDir(), "library.db"),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(store.Close)
	return store.Handle()
}
