package catalogservice

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/drop"
)

//go:generate mockgen -source=catalogservice.go -destination=mock_repo.go -package=catalogservice

type Repo interface {
	FindCaseByID(ctx context.Context, caseID int) (*domain.Case, error)
	ListCases(ctx context.Context) ([]domain.Case, error)
	FindItemByID(ctx context.Context, itemID int) (*domain.Item, error)
}

var (
	ErrCaseNotFound = errors.New("case not found")
	ErrItemNotFound = errors.New("item not found")
)

const tableCacheSize = 128

// Service serves the operator-managed case catalog. Drop tables are
// validated once per case version and cached; a case whose configuration
// fails validation is rejected here, before any charge happens.
type Service struct {
	repo   Repo
	tables *lru.Cache[string, *drop.Table]
}

func New(repo Repo) *Service {
	tables, _ := lru.New[string, *drop.Table](tableCacheSize)
	return &Service{
		repo:   repo,
		tables: tables,
	}
}

func (s *Service) GetCase(ctx context.Context, caseID int) (*domain.Case, *drop.Table, error) {
	c, err := s.repo.FindCaseByID(ctx, caseID)
	if err != nil {
		zap.L().Error("failed to get case", zap.Error(err))
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, ErrCaseNotFound
	}

	table, err := s.tableFor(c)
	if err != nil {
		return nil, nil, err
	}
	return c, table, nil
}

func (s *Service) tableFor(c *domain.Case) (*drop.Table, error) {
	key := fmt.Sprintf("%d:%d", c.ID, c.Version)
	if table, ok := s.tables.Get(key); ok {
		return table, nil
	}

	entries := make([]drop.Entry, len(c.Drops))
	for i, d := range c.Drops {
		entries[i] = drop.Entry{ItemID: d.ItemID, Rarity: d.Rarity, Weight: d.Weight}
	}
	table, err := drop.NewTable(entries)
	if err != nil {
		zap.L().Error("case has invalid drop table", zap.Int("caseID", c.ID), zap.Error(err))
		return nil, err
	}
	s.tables.Add(key, table)
	return table, nil
}

func (s *Service) ListCases(ctx context.Context) ([]domain.Case, error) {
	cases, err := s.repo.ListCases(ctx)
	if err != nil {
		zap.L().Error("failed to list cases", zap.Error(err))
		return nil, err
	}
	return cases, nil
}

// TierPercents returns the display odds for a case, derived from its raw
// weights.
func (s *Service) TierPercents(c *domain.Case) (map[string]float64, error) {
	table, err := s.tableFor(c)
	if err != nil {
		return nil, err
	}
	return table.TierPercents(), nil
}

func (s *Service) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		zap.L().Error("failed to get item", zap.Error(err))
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}
