package balance

import (
	"context"
	"net/http"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/dto"
	"github.com/caseforge/caseforge/pkg/auth"
	"github.com/caseforge/caseforge/pkg/utils"
)

//go:generate mockgen -source=balance.go -destination=mock_service.go -package=balance

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetHistory(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the current credits balance and the total amount spent for the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance and spent credits"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current: balance.CurrentBalance,
		Spent:   balance.SpentTotal,
	})
}

// GetHistory godoc
//
//	@Summary		Get balance history
//	@Description	Get the ledger transactions for the authenticated user sorted by creation date descending.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Balance history"
//	@Success		204	{object}	utils.Response				"Transactions not found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/balance/history [get]
func (h *BalanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.ledgerService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, txn := range transactions {
		response[i] = dto.TransactionResponseDTO{
			Delta:            txn.Delta,
			Reason:           txn.Reason,
			ResultingBalance: txn.ResultingBalance,
			CreatedAt:        txn.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
