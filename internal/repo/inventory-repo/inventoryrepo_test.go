package inventoryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/caseforge/caseforge/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateEntry(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		INSERT INTO inventory (user_id, item_id, rarity, case_id, cost, obtained_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	now := time.Now()

	tests := []struct {
		name      string
		entry     *domain.InventoryEntry
		mockSetup func(entry *domain.InventoryEntry)
		expectErr bool
	}{
		{
			name: "Successfully creates entry",
			entry: &domain.InventoryEntry{
				UserID:     1,
				ItemID:     3,
				Rarity:     "rare",
				CaseID:     1,
				Cost:       250,
				ObtainedAt: now,
			},
			mockSetup: func(entry *domain.InventoryEntry) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(entry.UserID, entry.ItemID, entry.Rarity, entry.CaseID, entry.Cost, entry.ObtainedAt).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			entry: &domain.InventoryEntry{
				UserID:     1,
				ItemID:     3,
				Rarity:     "rare",
				CaseID:     1,
				Cost:       250,
				ObtainedAt: now,
			},
			mockSetup: func(entry *domain.InventoryEntry) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(entry.UserID, entry.ItemID, entry.Rarity, entry.CaseID, entry.Cost, entry.ObtainedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.entry)

			result, err := repo.CreateEntry(context.Background(), tt.entry)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), result.ID)
			}
		})
	}
}

func TestRepository_BumpStats(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		INSERT INTO inventory_stats (user_id, rarity, item_count, spent_total)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (user_id, rarity)
		DO UPDATE SET item_count = inventory_stats.item_count + 1,
		              spent_total = inventory_stats.spent_total + EXCLUDED.spent_total
	`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully bumps stats",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(1, "rare", int64(250)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(1, "rare", int64(250)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.BumpStats(context.Background(), 1, "rare", 250)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_GetEntriesByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT i.id, i.user_id, i.item_id, it.name, i.rarity, i.case_id, i.cost, i.obtained_at
        FROM inventory i
        JOIN items it ON it.id = i.item_id
        WHERE i.user_id = $1
        ORDER BY i.obtained_at DESC
    `
	now := time.Now()

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		expected  []domain.InventoryEntry
	}{
		{
			name:   "Returns entries",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "item_id", "name", "rarity", "case_id", "cost", "obtained_at"}).
					AddRow(int64(2), 1, 5, "Meteor Core", "legendary", 1, int64(250), now).
					AddRow(int64(1), 1, 3, "Field Knife", "common", 1, int64(250), now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			expected: []domain.InventoryEntry{
				{ID: 2, UserID: 1, ItemID: 5, ItemName: "Meteor Core", Rarity: "legendary", CaseID: 1, Cost: 250, ObtainedAt: now},
				{ID: 1, UserID: 1, ItemID: 3, ItemName: "Field Knife", Rarity: "common", CaseID: 1, Cost: 250, ObtainedAt: now.Add(-time.Hour)},
			},
		},
		{
			name:   "Empty inventory",
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "item_id", "name", "rarity", "case_id", "cost", "obtained_at"})
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectErr: false,
			expected:  nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.GetEntriesByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRepository_GetStatsByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT rarity, item_count, spent_total
        FROM inventory_stats
        WHERE user_id = $1
        ORDER BY rarity
    `

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		expected  *domain.InventoryStats
	}{
		{
			name:   "Aggregates totals across rarities",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"rarity", "item_count", "spent_total"}).
					AddRow("common", int64(8), int64(2000)).
					AddRow("legendary", int64(1), int64(250))
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			expected: &domain.InventoryStats{
				UserID:     1,
				TotalItems: 9,
				TotalSpent: 2250,
				Rarities: []domain.RarityStat{
					{Rarity: "common", ItemCount: 8, SpentTotal: 2000},
					{Rarity: "legendary", ItemCount: 1, SpentTotal: 250},
				},
			},
		},
		{
			name:   "No stats yet",
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"rarity", "item_count", "spent_total"})
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectErr: false,
			expected:  &domain.InventoryStats{UserID: 2},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.GetStatsByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}
