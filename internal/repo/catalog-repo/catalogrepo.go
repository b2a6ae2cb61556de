package catalogrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) FindCaseByID(ctx context.Context, caseID int) (*domain.Case, error) {
	query := `
        SELECT id, name, price, version
        FROM cases
        WHERE id = $1 AND enabled
    `
	row := r.db.QueryRow(ctx, query, caseID)
	var c domain.Case
	err := row.Scan(&c.ID, &c.Name, &c.Price, &c.Version)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get case", zap.Error(err))
		return nil, err
	}

	drops, err := r.findDrops(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Drops = drops
	return &c, nil
}

func (r *Repository) findDrops(ctx context.Context, caseID int) ([]domain.DropEntry, error) {
	query := `
        SELECT cd.item_id, it.rarity, cd.weight
        FROM case_drops cd
        JOIN items it ON it.id = cd.item_id
        WHERE cd.case_id = $1
        ORDER BY cd.position
    `
	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		zap.L().Error("failed to fetch case drops", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var drops []domain.DropEntry
	for rows.Next() {
		var d domain.DropEntry
		if err := rows.Scan(&d.ItemID, &d.Rarity, &d.Weight); err != nil {
			zap.L().Error("failed to scan case drop row", zap.Error(err))
			return nil, err
		}
		drops = append(drops, d)
	}
	return drops, nil
}

func (r *Repository) ListCases(ctx context.Context) ([]domain.Case, error) {
	query := `
        SELECT id, name, price, version
        FROM cases
        WHERE enabled
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list cases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cases []domain.Case
	for rows.Next() {
		var c domain.Case
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.Version); err != nil {
			zap.L().Error("failed to scan case row", zap.Error(err))
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range cases {
		drops, err := r.findDrops(ctx, cases[i].ID)
		if err != nil {
			return nil, err
		}
		cases[i].Drops = drops
	}

	return cases, nil
}

func (r *Repository) FindItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	query := `
        SELECT id, name, rarity
        FROM items
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, itemID)
	var item domain.Item
	err := row.Scan(&item.ID, &item.Name, &item.Rarity)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}
