package cases

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/dto"
	"github.com/caseforge/caseforge/internal/service/catalogservice"
	"github.com/caseforge/caseforge/internal/service/ledgerservice"
	"github.com/caseforge/caseforge/internal/service/openingservice"
	"github.com/caseforge/caseforge/pkg/auth"
	"github.com/caseforge/caseforge/pkg/utils"
)

//go:generate mockgen -source=cases.go -destination=mock_service.go -package=cases

type OpeningService interface {
	Open(ctx context.Context, userID, caseID int, key uuid.UUID) (*openingservice.Result, error)
}

type CatalogService interface {
	ListCases(ctx context.Context) ([]domain.Case, error)
	TierPercents(c *domain.Case) (map[string]float64, error)
}

type CaseHandler struct {
	openingService OpeningService
	catalogService CatalogService
	validate       *validator.Validate
}

func New(openingService OpeningService, catalogService CatalogService) *CaseHandler {
	return &CaseHandler{
		openingService: openingService,
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// OpenCase godoc
//
//	@Summary		Open a case
//	@Description	Charge the case price from the user balance, resolve one item from the case drop table and add it to the inventory. Retrying with the same idempotency key never charges twice.
//	@Tags			Cases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OpenCaseRequestDTO	true	"Open request payload"
//	@Success		200		{object}	dto.OpenCaseResponseDTO		"Resolved item and new balance"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	dto.InsufficientFundsDTO	"Insufficient balance"
//	@Failure		404		{object}	utils.Response				"Case not found"
//	@Failure		409		{object}	utils.Response				"Request with this key still in progress"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Failure		503		{object}	utils.Response				"Result recording delayed"
//	@Router			/api/user/cases/open [post]
func (h *CaseHandler) OpenCase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.OpenCaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	key, err := uuid.Parse(req.IdempotencyKey)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid idempotency key")
		return
	}

	result, err := h.openingService.Open(r.Context(), userID, req.CaseID, key)
	if err != nil {
		h.respondOpenError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.OpenCaseResponseDTO{
		Item: dto.ItemDTO{
			ID:     result.Item.ID,
			Name:   result.Item.Name,
			Rarity: result.Item.Rarity,
		},
		NewBalance: result.NewBalance,
	})
}

func (h *CaseHandler) respondOpenError(w http.ResponseWriter, err error) {
	var denied *ledgerservice.InsufficientFundsError
	switch {
	case errors.As(err, &denied):
		utils.RespondWithJSON(w, http.StatusPaymentRequired, dto.InsufficientFundsDTO{
			Message:   "insufficient balance",
			Required:  denied.Required,
			Available: denied.Available,
		})
	case errors.Is(err, catalogservice.ErrCaseNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "case not found")
	case errors.Is(err, openingservice.ErrOpenInFlight):
		utils.RespondWithError(w, http.StatusConflict, "request already in progress")
	case errors.Is(err, openingservice.ErrIdempotencyConflict):
		utils.RespondWithError(w, http.StatusConflict, "idempotency key already used")
	case errors.Is(err, openingservice.ErrRecordPending):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "open accepted, result delayed")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListCases godoc
//
//	@Summary		List available cases
//	@Description	List the enabled cases with their prices and display odds derived from the configured weights.
//	@Tags			Cases
//	@Produce		json
//	@Success		200	{array}		dto.CaseResponseDTO	"Available cases"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/cases [get]
func (h *CaseHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	caseList, err := h.catalogService.ListCases(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CaseResponseDTO, 0, len(caseList))
	for i := range caseList {
		c := &caseList[i]
		percents, err := h.catalogService.TierPercents(c)
		if err != nil {
			// A misconfigured case is hidden from the listing, not fatal.
			continue
		}
		odds := make([]dto.CaseOddsDTO, 0, len(percents))
		for rarity, percent := range percents {
			odds = append(odds, dto.CaseOddsDTO{Rarity: rarity, Percent: percent})
		}
		sort.Slice(odds, func(i, j int) bool {
			if odds[i].Percent != odds[j].Percent {
				return odds[i].Percent > odds[j].Percent
			}
			return odds[i].Rarity < odds[j].Rarity
		})
		response = append(response, dto.CaseResponseDTO{
			ID:    c.ID,
			Name:  c.Name,
			Price: c.Price,
			Odds:  odds,
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
