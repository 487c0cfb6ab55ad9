package repository

import (
	"gorm.io/gorm"

	"github.com/lolirock238/vitual-backend/models"
)

// ItemPatch carries the fields of an item update. Nil fields are left
// unchanged.
type ItemPatch struct {
	Name       *string `json:"name"`
	CategoryID *uint   `json:"category_id"`
}

// CreateItem inserts a new item after checking its category exists
func (r *Repository) CreateItem(item *models.Item) error {
	if item.CategoryID == 0 {
		return NewError(KindValidation, "category_id is required")
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, item.CategoryID).Error; err != nil {
			return notFound(err, "category %d not found", item.CategoryID)
		}
		return tx.Create(item).Error
	})
}

// ListItems returns all items with their image references resolved
func (r *Repository) ListItems() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Preload("Images").Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ImageURL = firstImageURL(&items[i])
	}
	return items, nil
}

// GetItem returns one item by id with its image reference resolved
func (r *Repository) GetItem(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.Preload("Images").First(&item, id).Error; err != nil {
		return nil, notFound(err, "item %d not found", id)
	}
	item.ImageURL = firstImageURL(&item)
	return &item, nil
}

// UpdateItem applies a partial update to an item
func (r *Repository) UpdateItem(id uint, patch ItemPatch) (*models.Item, error) {
	var item models.Item
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return notFound(err, "item %d not found", id)
		}
		if patch.CategoryID != nil {
			var category models.Category
			if err := tx.First(&category, *patch.CategoryID).Error; err != nil {
				return notFound(err, "category %d not found", *patch.CategoryID)
			}
			item.CategoryID = *patch.CategoryID
		}
		if patch.Name != nil {
			item.Name = patch.Name
		}
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes an item together with its images and its outfit
// associations
func (r *Repository) DeleteItem(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, id).Error; err != nil {
			return notFound(err, "item %d not found", id)
		}
		if err := tx.Where("item_id = ?", id).Delete(&models.ItemImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&models.OutfitItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

func firstImageURL(item *models.Item) *string {
	if len(item.Images) == 0 {
		return nil
	}
	return &item.Images[0].ImageURL
}
