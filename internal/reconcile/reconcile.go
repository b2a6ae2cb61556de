package reconcile

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/caseforge/caseforge/internal/config"
	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/drop"
	"github.com/caseforge/caseforge/internal/metrics"
	"github.com/caseforge/caseforge/internal/pg"
	"github.com/caseforge/caseforge/internal/service/catalogservice"
)

//go:generate mockgen -source=reconcile.go -destination=mock_deps.go -package=reconcile

type OpenRequestRepo interface {
	FindStale(ctx context.Context, olderThan time.Duration, limit uint32) ([]domain.OpenRequest, error)
	MarkCharged(ctx context.Context, key uuid.UUID, resultingBalance int64) error
	MarkResolved(ctx context.Context, key uuid.UUID, itemID int, rarity string, roll, totalWeight int64) error
	MarkCompleted(ctx context.Context, key uuid.UUID, resultingBalance int64) error
	UpdateState(ctx context.Context, key uuid.UUID, from []string, to string) error
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount int64, reason, reference string) (*domain.Balance, error)
	ChargeRecord(ctx context.Context, reference string) (*domain.Transaction, error)
}

type InventoryRepo interface {
	CreateEntry(ctx context.Context, entry *domain.InventoryEntry) (*domain.InventoryEntry, error)
	BumpStats(ctx context.Context, userID int, rarity string, cost int64) error
}

type Catalog interface {
	GetCase(ctx context.Context, caseID int) (*domain.Case, *drop.Table, error)
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
}

var processingRequests sync.Map

// Service repairs open requests that stalled between the charge and the
// recorded item: it completes what can be completed and refunds what cannot,
// so no charge is ever silently lost.
type Service struct {
	openRepo      OpenRequestRepo
	ledger        Ledger
	inventoryRepo InventoryRepo
	catalog       Catalog
	txManager     pg.TXManager
	source        drop.Source

	limit      uint32
	workerPool WorkerPoolI
	interval   time.Duration
	staleAfter time.Duration
}

func New(cfg *config.Config, openRepo OpenRequestRepo, ledger Ledger, inventoryRepo InventoryRepo, catalog Catalog, txManager pg.TXManager) *Service {
	return &Service{
		openRepo:      openRepo,
		ledger:        ledger,
		inventoryRepo: inventoryRepo,
		catalog:       catalog,
		txManager:     txManager,
		source:        drop.CryptoSource{},
		limit:         1000,
		workerPool:    NewWorkerPool(cfg.ReconcileWorkers),
		interval:      cfg.ReconcileInterval,
		staleAfter:    cfg.ReconcileAfter,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconciliation service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciliation")
			return
		case <-ticker.C:
			s.processRequests(ctx)
		}
	}
}

func (s *Service) processRequests(ctx context.Context) {
	requests, err := s.openRepo.FindStale(ctx, s.staleAfter, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch stale open requests", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, req := range requests {
		req := req

		if _, loaded := processingRequests.LoadOrStore(req.Key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingRequests.Delete(req.Key)
				return s.handleRequest(ctx, req)
			})
			if err != nil {
				processingRequests.Delete(req.Key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling open requests", zap.Error(err))
	}
}

func (s *Service) handleRequest(ctx context.Context, req domain.OpenRequest) error {
	switch req.State {
	case domain.OpenStatePending:
		return s.handlePending(ctx, req)
	case domain.OpenStateCharged, domain.OpenStateResolved, domain.OpenStateRecordFailed:
		return s.repair(ctx, req)
	default:
		return nil
	}
}

// handlePending decides a stale PENDING request by the existence of its
// charge transaction record: charged means the process died mid-flight and
// the open must be finished; not charged means there is nothing to repair.
func (s *Service) handlePending(ctx context.Context, req domain.OpenRequest) error {
	charge, err := s.ledger.ChargeRecord(ctx, req.Key.String())
	if err != nil {
		return err
	}
	if charge == nil {
		err := s.openRepo.UpdateState(ctx, req.Key, []string{domain.OpenStatePending}, domain.OpenStateExpired)
		if err != nil && !errors.Is(err, domain.ErrStaleTransition) {
			return err
		}
		metrics.ReconcileActions.WithLabelValues("expired").Inc()
		return nil
	}

	// A PENDING row carries no balance; the charge transaction does.
	err = s.openRepo.MarkCharged(ctx, req.Key, charge.ResultingBalance)
	if err != nil {
		if errors.Is(err, domain.ErrStaleTransition) {
			return nil
		}
		return err
	}
	req.State = domain.OpenStateCharged
	req.ResultingBalance = charge.ResultingBalance
	return s.repair(ctx, req)
}

// repair finishes a charged request: resolves an item if none is pinned yet,
// then records it. A case that disappeared or turned invalid after the charge
// gets refunded instead.
func (s *Service) repair(ctx context.Context, req domain.OpenRequest) error {
	if req.ItemID == nil {
		_, table, err := s.catalog.GetCase(ctx, req.CaseID)
		if err != nil {
			var configErr *drop.ConfigError
			if errors.As(err, &configErr) || errors.Is(err, catalogservice.ErrCaseNotFound) {
				return s.refund(ctx, req)
			}
			return err
		}

		entry, roll, err := drop.Resolve(table, s.source)
		if err != nil {
			return err
		}
		if err := s.openRepo.MarkResolved(ctx, req.Key, entry.ItemID, entry.Rarity, roll, table.TotalWeight()); err != nil {
			if errors.Is(err, domain.ErrStaleTransition) {
				return nil
			}
			return err
		}
		req.ItemID = &entry.ItemID
		req.Rarity = entry.Rarity
		req.State = domain.OpenStateResolved
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.inventoryRepo.CreateEntry(ctx, &domain.InventoryEntry{
			UserID:     req.UserID,
			ItemID:     *req.ItemID,
			Rarity:     req.Rarity,
			CaseID:     req.CaseID,
			Cost:       req.Cost,
			ObtainedAt: time.Now(),
		}); err != nil {
			return err
		}
		if err := s.inventoryRepo.BumpStats(ctx, req.UserID, req.Rarity, req.Cost); err != nil {
			return err
		}
		return s.openRepo.MarkCompleted(ctx, req.Key, req.ResultingBalance)
	})
	if err != nil {
		if errors.Is(err, domain.ErrStaleTransition) {
			return nil
		}
		return err
	}

	metrics.ReconcileActions.WithLabelValues("completed").Inc()
	zap.L().Info("Repaired open request",
		zap.String("key", req.Key.String()),
		zap.Int("userID", req.UserID),
	)
	return nil
}

// refund returns the charge when the item can no longer be delivered. The
// state claim and the credit commit together.
func (s *Service) refund(ctx context.Context, req domain.OpenRequest) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		from := []string{domain.OpenStateCharged, domain.OpenStateResolved, domain.OpenStateRecordFailed}
		if err := s.openRepo.UpdateState(ctx, req.Key, from, domain.OpenStateRefunded); err != nil {
			return err
		}
		_, err := s.ledger.Credit(ctx, req.UserID, req.Cost, domain.TxReasonRefund, req.Key.String())
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrStaleTransition) {
			return nil
		}
		return err
	}
	metrics.ReconcileActions.WithLabelValues("refunded").Inc()
	zap.L().Info("Refunded open request", zap.String("key", req.Key.String()))
	return nil
}
