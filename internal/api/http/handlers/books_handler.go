package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/library-catalog/internal/api/dto"
	"github.com/spec-kit/library-catalog/internal/service"
	apperrors "github.com/spec-kit/library-catalog/pkg/util/errorutil"
)

// BooksHandler manages catalog endpoints. List and get are public; create,
// update and delete require a bearer token.
type BooksHandler struct {
	service *service.BookService
}

// NewBooksHandler constructs handler.
func NewBooksHandler(bookService *service.BookService) *BooksHandler {
	return &BooksHandler{service: bookService}
}

// ListBooks handles GET /api/books.
func (h *BooksHandler) ListBooks(c *fiber.Ctx) error {
	books, err := h.service.ListBooks(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		items = append(items, dto.NewBookResponse(&books[i]))
	}
	return c.JSON(items)
}

// GetBook handles GET /api/books/:id.
func (h *BooksHandler) GetBook(c *fiber.Ctx) error {
	id, err := parseBookID(c)
	if err != nil {
		return err
	}
	book, err := h.service.GetBook(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookResponse(book))
}

// CreateBook handles POST /api/books/create.
func (h *BooksHandler) CreateBook(c *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	book, err := h.service.CreateBook(c.UserContext(), service.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewBookResponse(book))
}

// UpdateBook handles PUT /api/books/update/:id.
func (h *BooksHandler) UpdateBook(c *fiber.Ctx) error {
	id, err := parseBookID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID != id {
		return apperrors.NewValidationError("id mismatch", nil)
	}

	if err := h.service.UpdateBook(c.UserContext(), id, service.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	}); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteBook handles DELETE /api/books/delete/:id.
func (h *BooksHandler) DeleteBook(c *fiber.Ctx) error {
	id, err := parseBookID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteBook(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseBookID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid book id", nil)
	}
	return id, nil
}
