package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cylinders/internal/common/config"
	"cylinders/internal/common/middleware"
	"cylinders/internal/revolve/catalog"
	"cylinders/internal/revolve/handlers"
	"cylinders/internal/revolve/layout"
	"cylinders/internal/revolve/models"
	"cylinders/internal/revolve/repository"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Render Service
// ============================================================

func main() {
	cfg := config.Load()
	if err := models.ValidateAngle(cfg.DefaultAngle); err != nil {
		log.Fatalf("DEFAULT_ANGLE: %v", err)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	db, err := repository.OpenSQLite(cfg.RenderDBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	opts := layout.Options{Padding: cfg.Padding, TextSize: cfg.TextSize}
	renderHandler := handlers.NewRenderHandler(cat, repo, opts, cfg.DefaultAngle)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Render Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe(db))

	// ============================================================
	// Render Routes
	// ============================================================

	renderHandler.Register(app.Group("/api/v1"))

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Render Service on %s (env: %s, %d objects)", addr, cfg.Environment, cat.Len())

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
