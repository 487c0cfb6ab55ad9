package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/lolirock238/vitual-backend/models"
)

// SeedData loads a small sample wardrobe. It is skipped when categories
// already exist so repeated runs do not duplicate data.
func SeedData(db *gorm.DB) error {
	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount > 0 {
		log.Println("Seed data already exists, skipping...")
		return nil
	}

	log.Println("Seeding database with sample wardrobe...")

	categories := []models.Category{
		{Name: "Shirts"},
		{Name: "Trousers"},
		{Name: "Shoes"},
		{Name: "Jackets"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
	}

	items := []models.Item{
		{Name: strPtr("Blue Shirt"), CategoryID: categories[0].ID},
		{Name: strPtr("White Shirt"), CategoryID: categories[0].ID},
		{Name: strPtr("Black Jeans"), CategoryID: categories[1].ID},
		{Name: strPtr("Chinos"), CategoryID: categories[1].ID},
		{Name: strPtr("White Sneakers"), CategoryID: categories[2].ID},
		{Name: strPtr("Denim Jacket"), CategoryID: categories[3].ID},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	occasion := "work"
	outfit := models.Outfit{Name: "Casual Friday", Occasion: &occasion}
	if err := db.Create(&outfit).Error; err != nil {
		return err
	}
	for _, item := range []models.Item{items[0], items[2], items[4]} {
		assoc := models.OutfitItem{OutfitID: outfit.ID, ItemID: item.ID}
		if err := db.Create(&assoc).Error; err != nil {
			return err
		}
	}

	log.Println("Database seeded successfully")
	return nil
}

func strPtr(s string) *string {
	return &s
}
