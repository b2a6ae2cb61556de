package inventoryrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateEntry(ctx context.Context, entry *domain.InventoryEntry) (*domain.InventoryEntry, error) {
	query := `
		INSERT INTO inventory (user_id, item_id, rarity, case_id, cost, obtained_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, entry.UserID, entry.ItemID, entry.Rarity, entry.CaseID, entry.Cost, entry.ObtainedAt).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save inventory entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// BumpStats folds one obtained item into the per-user aggregate. Called in
// the same database transaction as CreateEntry so the aggregate never drifts
// from the entries.
func (r *Repository) BumpStats(ctx context.Context, userID int, rarity string, cost int64) error {
	query := `
		INSERT INTO inventory_stats (user_id, rarity, item_count, spent_total)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (user_id, rarity)
		DO UPDATE SET item_count = inventory_stats.item_count + 1,
		              spent_total = inventory_stats.spent_total + EXCLUDED.spent_total
	`
	if _, err := r.db.Exec(ctx, query, userID, rarity, cost); err != nil {
		zap.L().Error("failed to update inventory stats", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetEntriesByUserID(ctx context.Context, userID int) ([]domain.InventoryEntry, error) {
	query := `
        SELECT i.id, i.user_id, i.item_id, it.name, i.rarity, i.case_id, i.cost, i.obtained_at
        FROM inventory i
        JOIN items it ON it.id = i.item_id
        WHERE i.user_id = $1
        ORDER BY i.obtained_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch inventory", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		var e domain.InventoryEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.ItemID, &e.ItemName, &e.Rarity, &e.CaseID, &e.Cost, &e.ObtainedAt)
		if err != nil {
			zap.L().Error("failed to scan inventory row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *Repository) GetStatsByUserID(ctx context.Context, userID int) (*domain.InventoryStats, error) {
	query := `
        SELECT rarity, item_count, spent_total
        FROM inventory_stats
        WHERE user_id = $1
        ORDER BY rarity
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch inventory stats", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	stats := &domain.InventoryStats{UserID: userID}
	for rows.Next() {
		var rs domain.RarityStat
		if err := rows.Scan(&rs.Rarity, &rs.ItemCount, &rs.SpentTotal); err != nil {
			zap.L().Error("failed to scan inventory stats row", zap.Error(err))
			return nil, err
		}
		stats.TotalItems += rs.ItemCount
		stats.TotalSpent += rs.SpentTotal
		stats.Rarities = append(stats.Rarities, rs)
	}

	return stats, nil
}
