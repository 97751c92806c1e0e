package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/spec-kit/library-catalog/internal/domain"
)

func TestUserRepositoryInsertAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Insert(ctx, "a@x.com", "hash-a")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	found, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.ID != created.ID || found.PasswordHash != "hash-a" {
		t.Fatalf("unexpected record: %+v", found)
	}
}

func TestUserRepositoryFindMissReturnsNil(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	found, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found != nil {
		t.Fatalf("expected nil on miss, got %+v", found)
	}
}

func TestUserRepositoryEmailIsCaseSensitive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.Insert(ctx, "A@x.com", "hash"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	found, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found != nil {
		t.Fatalf("lookup must be case-sensitive")
	}
}

func TestUserRepositoryDistinctEmailsDistinctIDs(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Insert(ctx, "a@x.com", "hash-a")
	if err != nil {
		t.Fatalf("insert first: %v", err)
	}
	second, err := repo.Insert(ctx, "b@x.com", "hash-b")
	if err != nil {
		t.Fatalf("insert second: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %d", first.ID)
	}
}

func TestUserRepositoryDuplicateInsert(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.Insert(ctx, "a@x.com", "original-hash"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := repo.Insert(ctx, "a@x.com", "other-hash"); !errors.Is(err, domain.ErrDuplicateIdentity) {
		t.Fatalf("expected ErrDuplicateIdentity, got %v", err)
	}

	found, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.PasswordHash != "original-hash" {
		t.Fatalf("original record must be unchanged, got %q", found.PasswordHash)
	}
}

func TestUserRepositoryConcurrentInsertSameEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	const writers = 2
	results := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = repo.Insert(ctx, "race@x.com", "hash")
		}(i)
	}
	wg.Wait()

	succeeded, lost := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrDuplicateIdentity):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || lost != 1 {
		t.Fatalf("expected exactly one winner, got %d winners and %d losers", succeeded, lost)
	}

	found, err := repo.FindByEmail(ctx, "race@x.com")
	if err != nil || found == nil {
		t.Fatalf("expected a single surviving record, err=%v", err)
	}
}
