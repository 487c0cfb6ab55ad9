package models

import "time"

// Outfit is a named combination of items, optionally with an uploaded image
type Outfit struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Occasion  *string   `json:"occasion"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	OutfitItems []OutfitItem `json:"-" gorm:"foreignKey:OutfitID;constraint:OnDelete:CASCADE"`

	// ItemIDs holds the associated item ids, filled in by the repository.
	// Not a column.
	ItemIDs []uint `json:"items" gorm:"-"`
}

func (Outfit) TableName() string {
	return "outfits"
}
