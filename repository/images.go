package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lolirock238/vitual-backend/models"
)

// AddItemImage records a stored asset reference for an item
func (r *Repository) AddItemImage(itemID uint, imageURL string) (*models.ItemImage, error) {
	if imageURL == "" {
		return nil, NewError(KindValidation, "image_url is required")
	}
	image := models.ItemImage{ItemID: itemID, ImageURL: imageURL}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			return notFound(err, "item %d not found", itemID)
		}
		return tx.Create(&image).Error
	})
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// ListItemImages returns all stored item image references
func (r *Repository) ListItemImages() ([]models.ItemImage, error) {
	var images []models.ItemImage
	if err := r.db.Order("id").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// AddOutfitItem links an item to an outfit directly
func (r *Repository) AddOutfitItem(outfitID, itemID uint) (*models.OutfitItem, error) {
	association := models.OutfitItem{OutfitID: outfitID, ItemID: itemID}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var outfit models.Outfit
		if err := tx.First(&outfit, outfitID).Error; err != nil {
			return notFound(err, "outfit %d not found", outfitID)
		}
		var item models.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			return notFound(err, "item %d not found", itemID)
		}
		var count int64
		if err := tx.Model(&models.OutfitItem{}).
			Where("outfit_id = ? AND item_id = ?", outfitID, itemID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewError(KindConflict, "item %d is already in outfit %d", itemID, outfitID)
		}
		if err := tx.Create(&association).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return NewError(KindConflict, "item %d is already in outfit %d", itemID, outfitID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &association, nil
}

// ListOutfitItems returns all outfit-item associations
func (r *Repository) ListOutfitItems() ([]models.OutfitItem, error) {
	var associations []models.OutfitItem
	if err := r.db.Order("outfit_id, item_id").Find(&associations).Error; err != nil {
		return nil, err
	}
	return associations, nil
}
