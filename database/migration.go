package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lolirock238/vitual-backend/models"
)

// AutoMigrate creates the schema for all models. It is idempotent and runs
// unconditionally at process start.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// DropAll drops all tables in reverse dependency order
func DropAll(db *gorm.DB) error {
	all := models.AllModels()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", all[i], err)
		}
	}
	return nil
}
