package models

import "time"

// Item is a single piece of clothing belonging to one category.
// It exclusively owns its image rows and its outfit associations.
type Item struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	Name       *string   `json:"name"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Images      []ItemImage  `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	OutfitItems []OutfitItem `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`

	// ImageURL is the first stored image reference, filled in by the
	// repository when images are loaded. Not a column.
	ImageURL *string `json:"image_url,omitempty" gorm:"-"`
}

func (Item) TableName() string {
	return "items"
}
