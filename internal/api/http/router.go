package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/library-catalog/internal/api/http/handlers"
	"github.com/spec-kit/library-catalog/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Books          *handlers.BooksHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. The catalog is publicly readable; writes
// and the book lifecycle require a bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	books := api.Group("/books")
	books.Get("/", cfg.Books.ListBooks)
	books.Get("/:id", cfg.Books.GetBook)

	protected := books.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/create", cfg.Books.CreateBook)
	protected.Put("/update/:id", cfg.Books.UpdateBook)
	protected.Delete("/delete/:id", cfg.Books.DeleteBook)
}
