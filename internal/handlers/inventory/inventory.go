package inventory

import (
	"context"
	"net/http"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/dto"
	"github.com/caseforge/caseforge/pkg/auth"
	"github.com/caseforge/caseforge/pkg/utils"
)

//go:generate mockgen -source=inventory.go -destination=mock_service.go -package=inventory

type Service interface {
	GetInventory(ctx context.Context, userID int) ([]domain.InventoryEntry, error)
	GetStats(ctx context.Context, userID int) (*domain.InventoryStats, error)
}

type InventoryHandler struct {
	inventoryService Service
}

func New(inventoryService Service) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// GetInventory godoc
//
//	@Summary		Get user inventory
//	@Description	Get the items the authenticated user obtained from cases sorted by acquisition date descending.
//	@Tags			Inventory
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InventoryEntryDTO	"Obtained items"
//	@Success		204	{object}	utils.Response			"Inventory is empty"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/inventory [get]
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entries, err := h.inventoryService.GetInventory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch inventory")
		return
	}

	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Inventory is empty")
		return
	}

	response := make([]dto.InventoryEntryDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.InventoryEntryDTO{
			ItemID:     entry.ItemID,
			ItemName:   entry.ItemName,
			Rarity:     entry.Rarity,
			CaseID:     entry.CaseID,
			Cost:       entry.Cost,
			ObtainedAt: entry.ObtainedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStats godoc
//
//	@Summary		Get inventory statistics
//	@Description	Get per rarity item counts and spending totals for the authenticated user.
//	@Tags			Inventory
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.InventoryStatsDTO	"Aggregated statistics"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/inventory/stats [get]
func (h *InventoryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	stats, err := h.inventoryService.GetStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	rarities := make([]dto.RarityStatDTO, len(stats.Rarities))
	for i, rs := range stats.Rarities {
		rarities[i] = dto.RarityStatDTO{
			Rarity:    rs.Rarity,
			ItemCount: rs.ItemCount,
			Spent:     rs.SpentTotal,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.InventoryStatsDTO{
		TotalItems: stats.TotalItems,
		TotalSpent: stats.TotalSpent,
		Rarities:   rarities,
	})
}
