package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/lolirock238/vitual-backend/config"
	"github.com/lolirock238/vitual-backend/database"
	"github.com/lolirock238/vitual-backend/repository"
	"github.com/lolirock238/vitual-backend/service"
	"github.com/lolirock238/vitual-backend/storage"
	"github.com/lolirock238/vitual-backend/web"
	"github.com/lolirock238/vitual-backend/web/handlers"
)

func main() {
	seed := flag.Bool("seed", false, "Seed database with sample data")
	flag.Parse()

	log := logrus.New()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.App.Environment == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	// Initialize database connection
	db, err := database.Connect(&cfg.Database, log)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	if err := database.CheckConnection(db); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}

	// Schema is created idempotently at every start
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if *seed {
		if err := database.SeedData(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Wire up the application
	assets, err := storage.New(cfg.Storage.UploadDir, cfg.Storage.PublicPrefix)
	if err != nil {
		log.Fatalf("Failed to initialize asset store: %v", err)
	}
	repo := repository.New(db)
	outfits := service.NewOutfitService(repo, assets, log)
	h := handlers.New(repo, outfits, assets, log)
	server := web.NewServer(h, cfg.Storage.UploadDir, cfg.Storage.PublicPrefix, log)

	// Start server in a goroutine
	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
}
