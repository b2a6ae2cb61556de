package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/caseforge/caseforge/internal/domain"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_repo.go -package=ledgerservice

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Charge(ctx context.Context, userID int, amount int64, reason, reference string) (*domain.Balance, error)
	Credit(ctx context.Context, userID int, amount int64, reason, reference string) (*domain.Balance, error)
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	FindChargeByReference(ctx context.Context, reference string) (*domain.Transaction, error)
}

var ErrInsufficientBalance = errors.New("insufficient balance")

// InsufficientFundsError carries the amounts surfaced to the caller when a
// charge is denied. errors.Is(err, ErrInsufficientBalance) matches it.
type InsufficientFundsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d, available %d", e.Required, e.Available)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

type Service struct {
	repo BalanceRepo
}

func New(repo BalanceRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.repo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return &domain.Balance{UserID: userID}, nil
	}
	return balance, nil
}

// TryCharge debits the balance if it covers the amount. The check and the
// debit are one conditional update in the repo, never a read followed by a
// write. On denial it returns *InsufficientFundsError with the amounts.
func (s *Service) TryCharge(ctx context.Context, userID int, amount int64, reference string) (*domain.Balance, error) {
	balance, err := s.repo.Charge(ctx, userID, amount, domain.TxReasonCaseOpen, reference)
	if err != nil {
		zap.L().Error("failed to charge balance", zap.Error(err))
		return nil, err
	}
	if balance != nil {
		return balance, nil
	}

	current, err := s.repo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to read balance after denied charge", zap.Error(err))
		return nil, err
	}
	var available int64
	if current != nil {
		available = current.CurrentBalance
	}
	return nil, &InsufficientFundsError{Required: amount, Available: available}
}

func (s *Service) Credit(ctx context.Context, userID int, amount int64, reason, reference string) (*domain.Balance, error) {
	balance, err := s.repo.Credit(ctx, userID, amount, reason, reference)
	if err != nil {
		zap.L().Error("failed to credit balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.repo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// ChargeRecord returns the charge transaction recorded under the reference,
// or nil when none exists. The record is written atomically with the debit,
// so its existence is the authoritative answer to "did this request charge",
// and its resulting balance is the balance the charge left behind.
func (s *Service) ChargeRecord(ctx context.Context, reference string) (*domain.Transaction, error) {
	return s.repo.FindChargeByReference(ctx, reference)
}
