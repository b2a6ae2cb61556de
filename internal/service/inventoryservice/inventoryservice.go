package inventoryservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/caseforge/caseforge/internal/domain"
)

//go:generate mockgen -source=inventoryservice.go -destination=mock_repo.go -package=inventoryservice

type Repo interface {
	GetEntriesByUserID(ctx context.Context, userID int) ([]domain.InventoryEntry, error)
	GetStatsByUserID(ctx context.Context, userID int) (*domain.InventoryStats, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetInventory(ctx context.Context, userID int) ([]domain.InventoryEntry, error) {
	entries, err := s.repo.GetEntriesByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch inventory", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) GetStats(ctx context.Context, userID int) (*domain.InventoryStats, error) {
	stats, err := s.repo.GetStatsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch inventory stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
