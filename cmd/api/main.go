package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/library-catalog/internal/api/http"
	"github.com/spec-kit/library-catalog/internal/api/http/handlers"
	"github.com/spec-kit/library-catalog/internal/auth"
	"github.com/spec-kit/library-catalog/internal/config"
	"github.com/spec-kit/library-catalog/internal/observability"
	"github.com/spec-kit/library-catalog/internal/persistence"
	"github.com/spec-kit/library-catalog/internal/repository"
	"github.com/spec-kit/library-catalog/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := persistence.NewSqlite(ctx, cfg.Sqlite, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db.Handle())
	bookRepo := repository.NewBookRepository(db.Handle())

	authService := service.NewAuthService(cfg.Auth, userRepo)
	bookService := service.NewBookService(bookRepo)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, cfg, logger, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, db, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Books:          handlers.NewBooksHandler(bookService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
