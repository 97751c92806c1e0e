package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/library-catalog/internal/config"
	"github.com/spec-kit/library-catalog/internal/domain"
	"github.com/spec-kit/library-catalog/internal/persistence"
	"github.com/spec-kit/library-catalog/internal/repository"
	apperrors "github.com/spec-kit/library-catalog/pkg/util/errorutil"
)

func newTestBookService(t *testing.T) *BookService {
	t.Helper()

	store, err := persistence.NewSqlite(context.Background(), config.SqliteConfig{
		Path: filepath.Join(t.TempDir(), "library.db"),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(store.Close)

	return NewBookService(repository.NewBookRepository(store.Handle()))
}

func TestBookServiceCreateValidation(t *testing.T) {
	svc := newTestBookService(t)
	ctx := context.Background()

	_, err := svc.CreateBook(ctx, BookInput{Title: "", Author: "Anon"})
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected validation error, got %v", err)
	}

	if _, err := svc.CreateBook(ctx, BookInput{Title: "Valid", Author: ""}); err == nil {
		t.Fatalf("expected validation error for missing author")
	}
}

func TestBookServiceCRUDRoundTrip(t *testing.T) {
	svc := newTestBookService(t)
	ctx := context.Background()

	created, err := svc.CreateBook(ctx, BookInput{Title: "Alpha", Author: "Anon"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateBook(ctx, created.ID, BookInput{Title: "Beta", Author: "Anon"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.GetBook(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Beta" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}

	if err := svc.DeleteBook(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetBook(ctx, created.ID); !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}
