package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/pg"
)

// errNotApplied aborts the charge transaction when the conditional update
// matched no row (insufficient balance or unknown user).
var errNotApplied = errors.New("charge condition not met")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, current_balance, spent_total
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.SpentTotal)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Charge atomically debits the balance if and only if it covers the amount,
// and appends the transaction record in the same database transaction. The
// condition lives in the UPDATE itself; concurrent charges against the same
// row serialize on it, so two requests can never both spend the same funds.
// Returns (nil, nil) when the balance was insufficient.
func (r *Repository) Charge(ctx context.Context, userID int, amount int64, reason, reference string) (*domain.Balance, error) {
	var balance domain.Balance
	query := `
		UPDATE balances
		SET current_balance = current_balance - $2, spent_total = spent_total + $2
		WHERE user_id = $1 AND current_balance >= $2
		RETURNING id, user_id, current_balance, spent_total
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, userID, amount)
		if err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.SpentTotal); err != nil {
			if err == pgx.ErrNoRows {
				return errNotApplied
			}
			zap.L().Error("failed to charge balance", zap.Error(err))
			return err
		}
		return r.appendTransaction(ctx, userID, -amount, reason, reference, balance.CurrentBalance)
	})
	if err != nil {
		if errors.Is(err, errNotApplied) {
			return nil, nil
		}
		return nil, err
	}
	return &balance, nil
}

// Credit atomically increments the balance, creating the row on first use,
// and appends the transaction record in the same database transaction.
func (r *Repository) Credit(ctx context.Context, userID int, amount int64, reason, reference string) (*domain.Balance, error) {
	var balance domain.Balance
	query := `
		INSERT INTO balances (user_id, current_balance, spent_total)
		VALUES ($1, $2, 0)
		ON CONFLICT (user_id)
		DO UPDATE SET current_balance = balances.current_balance + EXCLUDED.current_balance
		RETURNING id, user_id, current_balance, spent_total
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, userID, amount)
		if err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.SpentTotal); err != nil {
			zap.L().Error("failed to credit balance", zap.Error(err))
			return err
		}
		return r.appendTransaction(ctx, userID, amount, reason, reference, balance.CurrentBalance)
	})
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) appendTransaction(ctx context.Context, userID int, delta int64, reason, reference string, resultingBalance int64) error {
	query := `
		INSERT INTO transactions (user_id, delta, reason, reference, resulting_balance)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, userID, delta, reason, reference, resultingBalance); err != nil {
		zap.L().Error("failed to append transaction record", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, delta, reason, reference, resulting_balance, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Delta, &tx.Reason, &tx.Reference, &tx.ResultingBalance, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// FindChargeByReference reports the charge transaction recorded under the
// given reference, or nil when none exists. The reconciliation worker uses
// this to decide whether a stale pending open request was actually charged.
func (r *Repository) FindChargeByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, delta, reason, reference, resulting_balance, created_at
        FROM transactions
        WHERE reference = $1 AND reason = $2
    `
	row := r.db.QueryRow(ctx, query, reference, domain.TxReasonCaseOpen)
	var tx domain.Transaction
	err := row.Scan(&tx.ID, &tx.UserID, &tx.Delta, &tx.Reason, &tx.Reference, &tx.ResultingBalance, &tx.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find charge by reference", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}
