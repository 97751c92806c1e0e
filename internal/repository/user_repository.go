package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/library-catalog/internal/domain"
)

// UserRepository defines persistence access for identity records.
type UserRepository interface {
	// FindByEmail performs an exact, case-sensitive lookup. A miss is not an
	// error; it returns (nil, nil).
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert persists a new identity record. The UNIQUE constraint on email
	// makes the uniqueness check and the write one atomic operation; a
	// violation surfaces as domain.ErrDuplicateIdentity.
	Insert(ctx context.Context, email, passwordHash string) (*domain.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository returns a SQLite-backed implementation.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, email, password_hash, created_at
        FROM users WHERE email = ?`

	var (
		user      domain.User
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user.CreatedAt = fromMillis(createdAt)
	return &user, nil
}

func (r *userRepository) Insert(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	const query = `
        INSERT INTO users (email, password_hash, created_at)
        VALUES (?, ?, ?)`

	now := time.Now()
	res, err := r.db.ExecContext(ctx, query, email, passwordHash, toMillis(now))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user id: %w", err)
	}

	return &domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    fromMillis(toMillis(now)),
	}, nil
}

// isUniqueViolation reports whether the error is a SQLite UNIQUE constraint
// failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
