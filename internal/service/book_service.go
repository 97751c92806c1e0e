package service

import (
	"context"

	"github.com/spec-kit/library-catalog/internal/domain"
	"github.com/spec-kit/library-catalog/internal/repository"
	apperrors "github.com/spec-kit/library-catalog/pkg/util/errorutil"
)

// BookInput carries the writable fields of a catalog entry.
type BookInput struct {
	Title       string
	Author      string
	Description *string
}

// BookService exposes catalog CRUD on top of the repository.
type BookService struct {
	books repository.BookRepository
}

// NewBookService builds the service.
func NewBookService(books repository.BookRepository) *BookService {
	return &BookService{books: books}
}

// ListBooks returns the full catalog ordered by title.
func (s *BookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.books.List(ctx)
}

// GetBook returns a single entry by id.
func (s *BookService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	return s.books.GetByID(ctx, id)
}

// CreateBook validates and persists a new entry.
func (s *BookService) CreateBook(ctx context.Context, input BookInput) (*domain.Book, error) {
	if input.Title == "" || input.Author == "" {
		return nil, apperrors.NewValidationError("title and author required", nil)
	}
	book := &domain.Book{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
	}
	if err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook replaces the writable fields of an existing entry.
func (s *BookService) UpdateBook(ctx context.Context, id int64, input BookInput) error {
	if input.Title == "" || input.Author == "" {
		return apperrors.NewValidationError("title and author required", nil)
	}
	book := &domain.Book{
		ID:          id,
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
	}
	return s.books.Update(ctx, book)
}

// DeleteBook removes an entry by id.
func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	return s.books.Delete(ctx, id)
}
