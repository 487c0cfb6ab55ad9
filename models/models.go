package models

// AllModels returns all models in dependency order for migration
func AllModels() []interface{} {
	return []interface{}{
		&Category{},
		&Item{},
		&Outfit{},
		&ItemImage{},
		&OutfitItem{},
	}
}
