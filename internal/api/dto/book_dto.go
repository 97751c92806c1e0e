package dto

import (
	"time"

	"github.com/spec-kit/library-catalog/internal/domain"
)

// CreateBookRequest payload for new catalog entries.
type CreateBookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description *string `json:"description"`
}

// UpdateBookRequest payload for replacing an entry. ID must match the path
// parameter.
type UpdateBookRequest struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description *string `json:"description"`
}

// BookResponse is the external shape of a catalog entry.
type BookResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewBookResponse maps a domain book to its response shape.
func NewBookResponse(book *domain.Book) BookResponse {
	return BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
		CreatedAt:   book.CreatedAt,
	}
}
