package dto

import "time"

type InventoryEntryDTO struct {
	ItemID     int       `json:"item_id" example:"4"`
	ItemName   string    `json:"item_name" example:"Runed Halberd"`
	Rarity     string    `json:"rarity" example:"rare"`
	CaseID     int       `json:"case_id" example:"1"`
	Cost       int64     `json:"cost" example:"250"`
	ObtainedAt time.Time `json:"obtained_at" example:"2025-06-09T16:09:57+03:00"`
}

type RarityStatDTO struct {
	Rarity    string `json:"rarity" example:"rare"`
	ItemCount int64  `json:"item_count" example:"3"`
	Spent     int64  `json:"spent" example:"750"`
}

type InventoryStatsDTO struct {
	TotalItems int64           `json:"total_items" example:"12"`
	TotalSpent int64           `json:"total_spent" example:"3000"`
	Rarities   []RarityStatDTO `json:"rarities"`
}
