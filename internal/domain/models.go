package domain

import (
	"time"

	"github.com/google/uuid"
)

type Balance struct {
	ID             int   `db:"id"`
	UserID         int   `db:"user_id"`
	CurrentBalance int64 `db:"current_balance"`
	SpentTotal     int64 `db:"spent_total"`
}

// Transaction reasons. Every balance mutation appends exactly one record.
const (
	TxReasonCaseOpen = "case_open"
	TxReasonRefund   = "refund"
	TxReasonCredit   = "credit"
)

type Transaction struct {
	ID               int64     `db:"id"`
	UserID           int       `db:"user_id"`
	Delta            int64     `db:"delta"`
	Reason           string    `db:"reason"`
	Reference        string    `db:"reference"`
	ResultingBalance int64     `db:"resulting_balance"`
	CreatedAt        time.Time `db:"created_at"`
}

type Item struct {
	ID     int    `db:"id"`
	Name   string `db:"name"`
	Rarity string `db:"rarity"`
}

type DropEntry struct {
	ItemID int    `db:"item_id"`
	Rarity string `db:"rarity"`
	Weight int64  `db:"weight"`
}

type Case struct {
	ID      int         `db:"id"`
	Name    string      `db:"name"`
	Price   int64       `db:"price"`
	Version int         `db:"version"`
	Drops   []DropEntry `db:"-"`
}

type InventoryEntry struct {
	ID         int64     `db:"id"`
	UserID     int       `db:"user_id"`
	ItemID     int       `db:"item_id"`
	ItemName   string    `db:"item_name"`
	Rarity     string    `db:"rarity"`
	CaseID     int       `db:"case_id"`
	Cost       int64     `db:"cost"`
	ObtainedAt time.Time `db:"obtained_at"`
}

type RarityStat struct {
	Rarity     string `db:"rarity"`
	ItemCount  int64  `db:"item_count"`
	SpentTotal int64  `db:"spent_total"`
}

type InventoryStats struct {
	UserID     int
	TotalItems int64
	TotalSpent int64
	Rarities   []RarityStat
}

// Open request states. PENDING, CHARGED, RESOLVED and RECORD_FAILED are
// repaired by the reconciliation worker when they go stale.
const (
	OpenStatePending      = "PENDING"
	OpenStateCharged      = "CHARGED"
	OpenStateResolved     = "RESOLVED"
	OpenStateCompleted    = "COMPLETED"
	OpenStateDenied       = "DENIED"
	OpenStateRecordFailed = "RECORD_FAILED"
	OpenStateRefunded     = "REFUNDED"
	OpenStateExpired      = "EXPIRED"
)

// OpenRequest tracks one open-case attempt keyed by its idempotency key.
// Roll and TotalWeight record the draw for after-the-fact auditing.
// ResultingBalance holds the balance after the charge, or the available
// balance at the time the request was denied.
type OpenRequest struct {
	Key              uuid.UUID `db:"idempotency_key"`
	UserID           int       `db:"user_id"`
	CaseID           int       `db:"case_id"`
	State            string    `db:"state"`
	ItemID           *int      `db:"item_id"`
	Rarity           string    `db:"rarity"`
	Roll             int64     `db:"roll"`
	TotalWeight      int64     `db:"total_weight"`
	Cost             int64     `db:"cost"`
	ResultingBalance int64     `db:"resulting_balance"`
	Attempts         int       `db:"attempts"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// DropEvent is published to collaborators after a completed open.
type DropEvent struct {
	UserID int    `json:"user_id"`
	ItemID int    `json:"item_id"`
	Rarity string `json:"rarity"`
	CaseID int    `json:"case_id"`
}
