package openrequestrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/pg"
)

const requestColumns = `idempotency_key, user_id, case_id, state, item_id, rarity, roll, total_weight, cost, resulting_balance, attempts, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Claim inserts the request under its idempotency key. When the key is
// already taken the existing request is returned instead, so a retried call
// observes the prior attempt rather than creating a second one.
func (r *Repository) Claim(ctx context.Context, req *domain.OpenRequest) (bool, *domain.OpenRequest, error) {
	query := `
		INSERT INTO open_requests (idempotency_key, user_id, case_id, state, cost)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (idempotency_key) DO NOTHING
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, req.Key, req.UserID, req.CaseID, req.State, req.Cost).
		Scan(&req.CreatedAt, &req.UpdatedAt)
	if err == nil {
		return true, nil, nil
	}
	if err != pgx.ErrNoRows {
		zap.L().Error("failed to claim open request", zap.Error(err))
		return false, nil, err
	}

	existing, err := r.FindByKey(ctx, req.Key)
	if err != nil {
		return false, nil, err
	}
	return false, existing, nil
}

func (r *Repository) FindByKey(ctx context.Context, key uuid.UUID) (*domain.OpenRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM open_requests WHERE idempotency_key = $1`
	row := r.db.QueryRow(ctx, query, key)
	var req domain.OpenRequest
	err := row.Scan(&req.Key, &req.UserID, &req.CaseID, &req.State, &req.ItemID, &req.Rarity,
		&req.Roll, &req.TotalWeight, &req.Cost, &req.ResultingBalance, &req.Attempts,
		&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find open request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

// transition runs a guarded state update; the guard makes every transition a
// claim, so concurrent repair attempts cannot both act on the same request.
func (r *Repository) transition(ctx context.Context, query string, args ...any) error {
	var state string
	err := r.db.QueryRow(ctx, query, args...).Scan(&state)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrStaleTransition
		}
		zap.L().Error("failed to transition open request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkCharged(ctx context.Context, key uuid.UUID, resultingBalance int64) error {
	query := `
		UPDATE open_requests
		SET state = $3, resulting_balance = $4, updated_at = now()
		WHERE idempotency_key = $1 AND state = $2
		RETURNING state
	`
	return r.transition(ctx, query, key, domain.OpenStatePending, domain.OpenStateCharged, resultingBalance)
}

func (r *Repository) MarkDenied(ctx context.Context, key uuid.UUID, available int64) error {
	query := `
		UPDATE open_requests
		SET state = $3, resulting_balance = $4, updated_at = now()
		WHERE idempotency_key = $1 AND state = $2
		RETURNING state
	`
	return r.transition(ctx, query, key, domain.OpenStatePending, domain.OpenStateDenied, available)
}

// MarkResolved pins the drawn item on the request. RECORD_FAILED is a valid
// source state: a request can reach it with no item pinned, and the
// reconciliation worker re-resolves it through this same transition.
func (r *Repository) MarkResolved(ctx context.Context, key uuid.UUID, itemID int, rarity string, roll, totalWeight int64) error {
	query := `
		UPDATE open_requests
		SET state = $2, item_id = $3, rarity = $4, roll = $5, total_weight = $6, updated_at = now()
		WHERE idempotency_key = $1 AND state = ANY($7)
		RETURNING state
	`
	from := []string{domain.OpenStateCharged, domain.OpenStateRecordFailed}
	return r.transition(ctx, query, key, domain.OpenStateResolved, itemID, rarity, roll, totalWeight, from)
}

func (r *Repository) MarkCompleted(ctx context.Context, key uuid.UUID, resultingBalance int64) error {
	query := `
		UPDATE open_requests
		SET state = $2, resulting_balance = $3, updated_at = now()
		WHERE idempotency_key = $1 AND state = ANY($4)
		RETURNING state
	`
	from := []string{domain.OpenStateCharged, domain.OpenStateResolved, domain.OpenStateRecordFailed}
	return r.transition(ctx, query, key, domain.OpenStateCompleted, resultingBalance, from)
}

func (r *Repository) MarkRecordFailed(ctx context.Context, key uuid.UUID) error {
	query := `
		UPDATE open_requests
		SET state = $2, attempts = attempts + 1, updated_at = now()
		WHERE idempotency_key = $1 AND state = ANY($3)
		RETURNING state
	`
	from := []string{domain.OpenStateCharged, domain.OpenStateResolved}
	return r.transition(ctx, query, key, domain.OpenStateRecordFailed, from)
}

// UpdateState is the generic guarded transition used for refund and expiry
// claims.
func (r *Repository) UpdateState(ctx context.Context, key uuid.UUID, from []string, to string) error {
	query := `
		UPDATE open_requests
		SET state = $2, updated_at = now()
		WHERE idempotency_key = $1 AND state = ANY($3)
		RETURNING state
	`
	return r.transition(ctx, query, key, to, from)
}

// FindStale returns unfinished requests untouched for longer than olderThan,
// oldest first, for the reconciliation worker.
func (r *Repository) FindStale(ctx context.Context, olderThan time.Duration, limit uint32) ([]domain.OpenRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM open_requests
        WHERE state = ANY($1) AND updated_at < now() - $2::interval
        ORDER BY updated_at
        LIMIT $3
    `
	states := []string{domain.OpenStatePending, domain.OpenStateCharged, domain.OpenStateResolved, domain.OpenStateRecordFailed}
	rows, err := r.db.Query(ctx, query, states, olderThan.String(), limit)
	if err != nil {
		zap.L().Error("failed to fetch stale open requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.OpenRequest
	for rows.Next() {
		var req domain.OpenRequest
		err := rows.Scan(&req.Key, &req.UserID, &req.CaseID, &req.State, &req.ItemID, &req.Rarity,
			&req.Roll, &req.TotalWeight, &req.Cost, &req.ResultingBalance, &req.Attempts,
			&req.CreatedAt, &req.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan open request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}
