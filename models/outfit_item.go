package models

// OutfitItem links an outfit to an item. The composite primary key keeps
// the pair unique: an item cannot be added to the same outfit twice.
type OutfitItem struct {
	OutfitID uint `json:"outfit_id" gorm:"primaryKey;autoIncrement:false"`
	ItemID   uint `json:"item_id" gorm:"primaryKey;autoIncrement:false"`
}

func (OutfitItem) TableName() string {
	return "outfit_items"
}
