package openingservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/drop"
	"github.com/caseforge/caseforge/internal/metrics"
	"github.com/caseforge/caseforge/internal/pg"
	"github.com/caseforge/caseforge/internal/service/ledgerservice"
)

//go:generate mockgen -source=openingservice.go -destination=mock_deps.go -package=openingservice

type Ledger interface {
	TryCharge(ctx context.Context, userID int, amount int64, reference string) (*domain.Balance, error)
	Credit(ctx context.Context, userID int, amount int64, reason, reference string) (*domain.Balance, error)
}

type Catalog interface {
	GetCase(ctx context.Context, caseID int) (*domain.Case, *drop.Table, error)
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
}

type InventoryRepo interface {
	CreateEntry(ctx context.Context, entry *domain.InventoryEntry) (*domain.InventoryEntry, error)
	BumpStats(ctx context.Context, userID int, rarity string, cost int64) error
}

type OpenRequestRepo interface {
	FindByKey(ctx context.Context, key uuid.UUID) (*domain.OpenRequest, error)
	Claim(ctx context.Context, req *domain.OpenRequest) (bool, *domain.OpenRequest, error)
	MarkCharged(ctx context.Context, key uuid.UUID, resultingBalance int64) error
	MarkDenied(ctx context.Context, key uuid.UUID, available int64) error
	MarkResolved(ctx context.Context, key uuid.UUID, itemID int, rarity string, roll, totalWeight int64) error
	MarkCompleted(ctx context.Context, key uuid.UUID, resultingBalance int64) error
	MarkRecordFailed(ctx context.Context, key uuid.UUID) error
	UpdateState(ctx context.Context, key uuid.UUID, from []string, to string) error
}

type Notifier interface {
	Publish(event domain.DropEvent)
}

var (
	// ErrOpenInFlight is returned when the idempotency key belongs to a
	// request that has not reached a terminal state yet.
	ErrOpenInFlight = errors.New("open request already in progress")
	// ErrIdempotencyConflict is returned when the key was already used for a
	// different user or case.
	ErrIdempotencyConflict = errors.New("idempotency key already used for a different request")
	// ErrRecordPending is returned after a successful charge whose result
	// could not be recorded before retries ran out; the reconciliation worker
	// finishes or refunds it.
	ErrRecordPending = errors.New("open request charged, recording queued for reconciliation")
	// ErrOpenAborted is returned on replay of a request that ended refunded
	// or expired; the charge (if any) has been returned.
	ErrOpenAborted = errors.New("open request was aborted")
)

type Result struct {
	Item       domain.Item
	NewBalance int64
}

const (
	defaultRecordRetries = 3
	defaultRecordDelay   = 200 * time.Millisecond
)

// Service drives one open request through
// PENDING -> CHARGED -> RESOLVED -> COMPLETED, with DENIED and RECORD_FAILED
// branches. The charge is the only gate: once it succeeds the request must
// end in exactly one recorded item or a refund.
type Service struct {
	ledger        Ledger
	catalog       Catalog
	inventoryRepo InventoryRepo
	openRepo      OpenRequestRepo
	txManager     pg.TXManager
	source        drop.Source
	notifier      Notifier

	recordRetries int
	recordDelay   time.Duration
}

func New(ledger Ledger, catalog Catalog, inventoryRepo InventoryRepo, openRepo OpenRequestRepo, txManager pg.TXManager, source drop.Source, notifier Notifier) *Service {
	return &Service{
		ledger:        ledger,
		catalog:       catalog,
		inventoryRepo: inventoryRepo,
		openRepo:      openRepo,
		txManager:     txManager,
		source:        source,
		notifier:      notifier,
		recordRetries: defaultRecordRetries,
		recordDelay:   defaultRecordDelay,
	}
}

// SetRecordRetry overrides the bounded retry policy of the record step.
func (s *Service) SetRecordRetry(retries int, delay time.Duration) {
	s.recordRetries = retries
	s.recordDelay = delay
}

func (s *Service) Open(ctx context.Context, userID, caseID int, key uuid.UUID) (*Result, error) {
	// Replays answer from the stored request alone, so a completed open stays
	// replayable even after its case was disabled or removed.
	existing, err := s.openRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.replay(ctx, existing, userID, caseID)
	}

	c, table, err := s.catalog.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	claimed, existing, err := s.openRepo.Claim(ctx, &domain.OpenRequest{
		Key:    key,
		UserID: userID,
		CaseID: caseID,
		State:  domain.OpenStatePending,
		Cost:   c.Price,
	})
	if err != nil {
		return nil, err
	}
	if !claimed {
		return s.replay(ctx, existing, userID, caseID)
	}

	// The debit and the PENDING -> CHARGED transition commit together, so a
	// stale PENDING row always means the charge never happened.
	var balance *domain.Balance
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		b, err := s.ledger.TryCharge(ctx, userID, c.Price, key.String())
		if err != nil {
			return err
		}
		balance = b
		return s.openRepo.MarkCharged(ctx, key, b.CurrentBalance)
	})
	if err != nil {
		var denied *ledgerservice.InsufficientFundsError
		if errors.As(err, &denied) {
			if err := s.openRepo.MarkDenied(ctx, key, denied.Available); err != nil {
				zap.L().Error("failed to mark open request denied", zap.Error(err))
			}
			metrics.OpensTotal.WithLabelValues(metrics.OutcomeDenied).Inc()
			return nil, denied
		}
		return nil, err
	}

	// From here on the caller's lifecycle no longer matters: the charge has
	// happened and completion must proceed even if the request is cancelled.
	ctx = context.WithoutCancel(ctx)

	entry, roll, err := drop.Resolve(table, s.source)
	if err != nil {
		zap.L().Error("drop resolution failed after charge, refunding", zap.Error(err))
		s.compensate(ctx, key, userID, c.Price)
		return nil, err
	}
	if err := s.openRepo.MarkResolved(ctx, key, entry.ItemID, entry.Rarity, roll, table.TotalWeight()); err != nil {
		// Not fatal: the record step below still carries the entry, and the
		// reconciliation worker re-resolves when no item got pinned.
		zap.L().Warn("failed to pin resolved item", zap.Error(err))
	}

	if err := s.record(ctx, key, userID, c, entry, balance.CurrentBalance); err != nil {
		if err := s.openRepo.MarkRecordFailed(ctx, key); err != nil && !errors.Is(err, domain.ErrStaleTransition) {
			zap.L().Error("failed to queue open request for reconciliation", zap.Error(err),
				zap.String("key", key.String()))
		}
		metrics.OpensTotal.WithLabelValues(metrics.OutcomeRecordFailed).Inc()
		return nil, ErrRecordPending
	}

	item, err := s.catalog.GetItem(ctx, entry.ItemID)
	if err != nil {
		// The open is recorded; only the response payload is degraded.
		item = &domain.Item{ID: entry.ItemID, Rarity: entry.Rarity}
	}

	metrics.OpensTotal.WithLabelValues(metrics.OutcomeCompleted).Inc()
	metrics.DropsTotal.WithLabelValues(entry.Rarity).Inc()
	s.notifier.Publish(domain.DropEvent{
		UserID: userID,
		ItemID: entry.ItemID,
		Rarity: entry.Rarity,
		CaseID: caseID,
	})

	return &Result{Item: *item, NewBalance: balance.CurrentBalance}, nil
}

// record appends the inventory entry, folds the aggregate stats and moves the
// request to COMPLETED in one database transaction, retrying with bounded
// backoff. A stale-transition result means another actor (the reconciliation
// worker) already completed the request.
func (s *Service) record(ctx context.Context, key uuid.UUID, userID int, c *domain.Case, entry drop.Entry, resultingBalance int64) error {
	var lastErr error
	for attempt := 1; attempt <= s.recordRetries; attempt++ {
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			if _, err := s.inventoryRepo.CreateEntry(ctx, &domain.InventoryEntry{
				UserID:     userID,
				ItemID:     entry.ItemID,
				Rarity:     entry.Rarity,
				CaseID:     c.ID,
				Cost:       c.Price,
				ObtainedAt: time.Now(),
			}); err != nil {
				return err
			}
			if err := s.inventoryRepo.BumpStats(ctx, userID, entry.Rarity, c.Price); err != nil {
				return err
			}
			return s.openRepo.MarkCompleted(ctx, key, resultingBalance)
		})
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrStaleTransition) {
			return nil
		}
		lastErr = err
		zap.L().Warn("failed to record open result",
			zap.Int("attempt", attempt),
			zap.String("key", key.String()),
			zap.Error(err),
		)
		if attempt < s.recordRetries {
			time.Sleep(s.recordDelay * time.Duration(attempt))
		}
	}
	return lastErr
}

// compensate returns the charged amount. The refund claim and the credit
// commit together; if the whole transaction fails the request stays CHARGED
// and the reconciliation worker picks it up.
func (s *Service) compensate(ctx context.Context, key uuid.UUID, userID int, amount int64) {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		from := []string{domain.OpenStateCharged, domain.OpenStateResolved}
		if err := s.openRepo.UpdateState(ctx, key, from, domain.OpenStateRefunded); err != nil {
			return err
		}
		_, err := s.ledger.Credit(ctx, userID, amount, domain.TxReasonRefund, key.String())
		return err
	})
	if err != nil && !errors.Is(err, domain.ErrStaleTransition) {
		zap.L().Error("refund failed, reconciliation will repair",
			zap.String("key", key.String()), zap.Error(err))
		return
	}
	metrics.OpensTotal.WithLabelValues(metrics.OutcomeRefunded).Inc()
}

// replay answers a retried request from the stored outcome without any new
// side effect.
func (s *Service) replay(ctx context.Context, existing *domain.OpenRequest, userID, caseID int) (*Result, error) {
	if existing == nil {
		return nil, ErrOpenInFlight
	}
	if existing.UserID != userID || existing.CaseID != caseID {
		return nil, ErrIdempotencyConflict
	}

	switch existing.State {
	case domain.OpenStateCompleted:
		if existing.ItemID == nil {
			return nil, ErrOpenInFlight
		}
		item, err := s.catalog.GetItem(ctx, *existing.ItemID)
		if err != nil {
			return nil, err
		}
		metrics.OpensTotal.WithLabelValues(metrics.OutcomeReplayed).Inc()
		return &Result{Item: *item, NewBalance: existing.ResultingBalance}, nil
	case domain.OpenStateDenied:
		return nil, &ledgerservice.InsufficientFundsError{
			Required:  existing.Cost,
			Available: existing.ResultingBalance,
		}
	case domain.OpenStateRefunded, domain.OpenStateExpired:
		return nil, ErrOpenAborted
	default:
		return nil, ErrOpenInFlight
	}
}
