package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/sirupsen/logrus"

	"github.com/lolirock238/vitual-backend/config"
	"github.com/lolirock238/vitual-backend/database"
	"github.com/lolirock238/vitual-backend/models"
)

func main() {
	force := flag.Bool("force", false, "Force re-seed even if data exists")
	flag.Parse()

	fmt.Println("Starting database seeding tool")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Connect(&cfg.Database, logrus.New())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *force {
		fmt.Println("Force flag enabled. Clearing existing data...")
		// Clear data in reverse dependency order
		for _, model := range []interface{}{
			&models.OutfitItem{},
			&models.ItemImage{},
			&models.Outfit{},
			&models.Item{},
			&models.Category{},
		} {
			if err := db.Where("1 = 1").Delete(model).Error; err != nil {
				log.Fatalf("Failed to clear %T: %v", model, err)
			}
		}
	}

	if err := database.SeedData(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}
}
