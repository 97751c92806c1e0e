package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spec-kit/library-catalog/internal/domain"
)

// BookRepository defines persistence access for catalog entries.
type BookRepository interface {
	List(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	Create(ctx context.Context, book *domain.Book) error
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int64) error
}

type bookRepository struct {
	db *sql.DB
}

// NewBookRepository returns a SQLite-backed implementation.
func NewBookRepository(db *sql.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	const query = `
        SELECT id, title, author, description, created_at
        FROM books ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]domain.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	return books, rows.Err()
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	const query = `
        SELECT id, title, author, description, created_at
        FROM books WHERE id = ?`

	book, err := scanBook(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

func (r *bookRepository) Create(ctx context.Context, book *domain.Book) error {
	const query = `
        INSERT INTO books (title, author, description, created_at)
        VALUES (?, ?, ?, ?)`

	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, query,
		book.Title,
		book.Author,
		book.Description,
		toMillis(book.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert book id: %w", err)
	}
	book.ID = id
	book.CreatedAt = fromMillis(toMillis(book.CreatedAt))
	return nil
}

func (r *bookRepository) Update(ctx context.Context, book *domain.Book) error {
	const query = `
        UPDATE books SET title = ?, author = ?, description = ?
        WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		book.Title,
		book.Author,
		book.Description,
		book.ID,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM books WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*domain.Book, error) {
	var (
		book        domain.Book
		description sql.NullString
		createdAt   int64
	)
	if err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&description,
		&createdAt,
	); err != nil {
		return nil, err
	}
	if description.Valid {
		book.Description = &description.String
	}
	book.CreatedAt = fromMillis(createdAt)
	return &book, nil
}
