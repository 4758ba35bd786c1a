package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/PavaniTiago/readiness-survey-api/internal/config"
	"github.com/PavaniTiago/readiness-survey-api/internal/infrastructure/database"
	"github.com/PavaniTiago/readiness-survey-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/readiness-survey-api/internal/interfaces/http/routes"
	"github.com/PavaniTiago/readiness-survey-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := config.LoadEnvFile(".env"); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("❌ Error loading configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("❌ Error building logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	// Initialize database
	db, err := database.SetupDatabase(cfg.Database, zl)
	if err != nil {
		return fmt.Errorf("error setting up database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zl.Warn("failed to close database", zap.Error(err))
		}
	}()

	app := fiber.New(fiber.Config{
		// Desabilitado modo Prefork: o SQLite aceita um único processo escritor
		Prefork:               false,
		BodyLimit:             cfg.BodyLimit,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		DisableStartupMessage: true,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app, cfg.AllowOrigins, zl)

	// Setup routes
	routes.SetupRoutes(app, db, zl)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		zl.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			zl.Warn("shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + strconv.Itoa(cfg.Port)
	zl.Info("server is running", zap.String("addr", addr), zap.String("driver", cfg.Database.Driver))
	return app.Listen(addr)
}
