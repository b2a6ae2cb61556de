package dto

type OpenCaseRequestDTO struct {
	CaseID         int    `json:"case_id" validate:"required,gt=0" example:"1"`
	IdempotencyKey string `json:"idempotency_key" validate:"required,uuid4" example:"0b81e612-a8c5-4a9f-9be0-3c2b9d58c5a1"`
}

type ItemDTO struct {
	ID     int    `json:"id" example:"6"`
	Name   string `json:"name" example:"Starforged Claymore"`
	Rarity string `json:"rarity" example:"legendary"`
}

type OpenCaseResponseDTO struct {
	Item       ItemDTO `json:"item"`
	NewBalance int64   `json:"new_balance" example:"750"`
}

type InsufficientFundsDTO struct {
	Message   string `json:"message" example:"insufficient balance"`
	Required  int64  `json:"required" example:"250"`
	Available int64  `json:"available" example:"100"`
}
