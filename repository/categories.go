package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lolirock238/vitual-backend/models"
)

// CreateCategory inserts a new category
func (r *Repository) CreateCategory(name string) (*models.Category, error) {
	if name == "" {
		return nil, NewError(KindValidation, "name is required")
	}
	category := models.Category{Name: name}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewError(KindConflict, "category %q already exists", name)
		}
		if err := tx.Create(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return NewError(KindConflict, "category %q already exists", name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns all categories in insertion order
func (r *Repository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory returns one category by id
func (r *Repository) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, notFound(err, "category %d not found", id)
	}
	return &category, nil
}

// UpdateCategory renames a category
func (r *Repository) UpdateCategory(id uint, name string) (*models.Category, error) {
	if name == "" {
		return nil, NewError(KindValidation, "name is required")
	}
	var category models.Category
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			return notFound(err, "category %d not found", id)
		}
		category.Name = name
		if err := tx.Save(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return NewError(KindConflict, "category %q already exists", name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category. A category that still has items is
// not deleted; the caller must move or delete the items first.
func (r *Repository) DeleteCategory(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			return notFound(err, "category %d not found", id)
		}
		var itemCount int64
		if err := tx.Model(&models.Item{}).Where("category_id = ?", id).Count(&itemCount).Error; err != nil {
			return err
		}
		if itemCount > 0 {
			return NewError(KindConflict, "category %d still has %d items", id, itemCount)
		}
		return tx.Delete(&category).Error
	})
}
