package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/sirupsen/logrus"

	"github.com/lolirock238/vitual-backend/config"
	"github.com/lolirock238/vitual-backend/database"
)

func main() {
	var (
		drop = flag.Bool("drop", false, "Drop all tables before migration")
		help = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("Starting database migration tool")

	db, err := database.Connect(&cfg.Database, logrus.New())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	if err := database.CheckConnection(db); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}

	if *drop {
		fmt.Println("Dropping all tables...")
		if err := database.DropAll(db); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("All tables dropped")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	fmt.Println("Migration completed successfully")
}

func showHelp() {
	log.Println(`
Wardrobe Catalog Migration Tool

Usage:
  go run cmd/migrate/main.go [options]

Options:
  -drop  Drop all tables before migration
  -help  Show this help message`)
}
