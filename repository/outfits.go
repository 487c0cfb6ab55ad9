package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lolirock238/vitual-backend/models"
)

// OutfitPatch carries the fields of an outfit update. Nil fields are left
// unchanged.
type OutfitPatch struct {
	Name     *string `json:"name"`
	Occasion *string `json:"occasion"`
}

// AttachImageFunc persists an outfit image once the outfit row exists and
// returns the public reference for it. It runs inside the composition
// transaction, before commit.
type AttachImageFunc func(outfitID uint) (string, error)

// CreateOutfit inserts a new outfit with no associations
func (r *Repository) CreateOutfit(outfit *models.Outfit) error {
	if outfit.Name == "" {
		return NewError(KindValidation, "name is required")
	}
	if err := r.db.Create(outfit).Error; err != nil {
		return err
	}
	outfit.ItemIDs = []uint{}
	return nil
}

// ListOutfits returns all outfits with their associated item ids
func (r *Repository) ListOutfits() ([]models.Outfit, error) {
	var outfits []models.Outfit
	if err := r.db.Order("id").Find(&outfits).Error; err != nil {
		return nil, err
	}
	var associations []models.OutfitItem
	if err := r.db.Order("item_id").Find(&associations).Error; err != nil {
		return nil, err
	}
	byOutfit := make(map[uint][]uint, len(outfits))
	for _, a := range associations {
		byOutfit[a.OutfitID] = append(byOutfit[a.OutfitID], a.ItemID)
	}
	for i := range outfits {
		ids := byOutfit[outfits[i].ID]
		if ids == nil {
			ids = []uint{}
		}
		outfits[i].ItemIDs = ids
	}
	return outfits, nil
}

// GetOutfit returns one outfit by id with its associated item ids
func (r *Repository) GetOutfit(id uint) (*models.Outfit, error) {
	var outfit models.Outfit
	if err := r.db.First(&outfit, id).Error; err != nil {
		return nil, notFound(err, "outfit %d not found", id)
	}
	ids, err := r.outfitItemIDs(r.db, id)
	if err != nil {
		return nil, err
	}
	outfit.ItemIDs = ids
	return &outfit, nil
}

// UpdateOutfit applies a partial update to an outfit
func (r *Repository) UpdateOutfit(id uint, patch OutfitPatch) (*models.Outfit, error) {
	var outfit models.Outfit
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&outfit, id).Error; err != nil {
			return notFound(err, "outfit %d not found", id)
		}
		if patch.Name != nil {
			if *patch.Name == "" {
				return NewError(KindValidation, "name is required")
			}
			outfit.Name = *patch.Name
		}
		if patch.Occasion != nil {
			outfit.Occasion = patch.Occasion
		}
		return tx.Save(&outfit).Error
	})
	if err != nil {
		return nil, err
	}
	ids, err := r.outfitItemIDs(r.db, id)
	if err != nil {
		return nil, err
	}
	outfit.ItemIDs = ids
	return &outfit, nil
}

// DeleteOutfit removes an outfit and its associations
func (r *Repository) DeleteOutfit(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var outfit models.Outfit
		if err := tx.First(&outfit, id).Error; err != nil {
			return notFound(err, "outfit %d not found", id)
		}
		if err := tx.Where("outfit_id = ?", id).Delete(&models.OutfitItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&outfit).Error
	})
}

// CreateOutfitWithItems creates an outfit, optionally attaches its image,
// and links every referenced item, all in one transaction. Any failure
// rolls the whole operation back: no outfit row and no associations remain
// visible afterwards. The image bytes are written by attachImage before the
// transaction commits, so no committed row ever references an unwritten
// asset; the caller removes the written file if the transaction aborts.
func (r *Repository) CreateOutfitWithItems(outfit *models.Outfit, itemIDs []uint, attachImage AttachImageFunc) error {
	if outfit.Name == "" {
		return NewError(KindValidation, "name is required")
	}
	ids := dedupe(itemIDs)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(outfit).Error; err != nil {
			return err
		}
		if attachImage != nil {
			url, err := attachImage(outfit.ID)
			if err != nil {
				return err
			}
			outfit.ImageURL = &url
			if err := tx.Model(outfit).Update("image_url", url).Error; err != nil {
				return err
			}
		}
		for _, id := range ids {
			var item models.Item
			if err := tx.First(&item, id).Error; err != nil {
				return notFound(err, "item %d not found", id)
			}
			association := models.OutfitItem{OutfitID: outfit.ID, ItemID: id}
			if err := tx.Create(&association).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return NewError(KindConflict, "item %d is already in outfit %d", id, outfit.ID)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	outfit.ItemIDs = ids
	return nil
}

func (r *Repository) outfitItemIDs(db *gorm.DB, outfitID uint) ([]uint, error) {
	ids := []uint{}
	err := db.Model(&models.OutfitItem{}).
		Where("outfit_id = ?", outfitID).
		Order("item_id").
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
