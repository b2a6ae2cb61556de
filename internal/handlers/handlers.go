package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/caseforge/caseforge/docs"
	balancehandlers "github.com/caseforge/caseforge/internal/handlers/balance"
	casehandlers "github.com/caseforge/caseforge/internal/handlers/cases"
	inventoryhandlers "github.com/caseforge/caseforge/internal/handlers/inventory"
	"github.com/caseforge/caseforge/internal/service"
	"github.com/caseforge/caseforge/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type CaseHandler interface {
	OpenCase(w http.ResponseWriter, r *http.Request)
	ListCases(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type InventoryHandler interface {
	GetInventory(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	CaseHandler      CaseHandler
	BalanceHandler   BalanceHandler
	InventoryHandler InventoryHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		CaseHandler:      casehandlers.New(s.Opening, s.Catalog),
		BalanceHandler:   balancehandlers.New(s.Ledger),
		InventoryHandler: inventoryhandlers.New(s.Inventory),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/cases", h.CaseHandler.ListCases)
	r.Route("/api/user", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/cases/open", h.CaseHandler.OpenCase)
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Get("/history", h.BalanceHandler.GetHistory)
			})
			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", h.InventoryHandler.GetInventory)
				r.Get("/stats", h.InventoryHandler.GetStats)
			})
		})
	})

	return r
}
