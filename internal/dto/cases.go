package dto

type CaseOddsDTO struct {
	Rarity  string  `json:"rarity" example:"legendary"`
	Percent float64 `json:"percent" example:"0.5"`
}

type CaseResponseDTO struct {
	ID    int           `json:"id" example:"1"`
	Name  string        `json:"name" example:"Armory Case"`
	Price int64         `json:"price" example:"250"`
	Odds  []CaseOddsDTO `json:"odds"`
}
