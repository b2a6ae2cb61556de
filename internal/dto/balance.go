package dto

import "time"

type BalanceResponseDTO struct {
	Current int64 `json:"current" example:"500"`
	Spent   int64 `json:"spent" example:"1250"`
}

type TransactionResponseDTO struct {
	Delta            int64     `json:"delta" example:"-250"`
	Reason           string    `json:"reason" example:"case_open"`
	ResultingBalance int64     `json:"resulting_balance" example:"250"`
	CreatedAt        time.Time `json:"created_at" example:"2025-06-09T16:09:57+03:00"`
}
