package models

// ItemImage is one stored asset reference belonging to exactly one item
type ItemImage struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	ItemID   uint   `json:"item_id" gorm:"not null;index"`
	ImageURL string `json:"image_url" gorm:"not null"`
}

func (ItemImage) TableName() string {
	return "item_images"
}
