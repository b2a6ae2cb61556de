package service

import (
	"github.com/caseforge/caseforge/internal/drop"
	"github.com/caseforge/caseforge/internal/pg"
	"github.com/caseforge/caseforge/internal/repo"
	"github.com/caseforge/caseforge/internal/service/catalogservice"
	"github.com/caseforge/caseforge/internal/service/inventoryservice"
	"github.com/caseforge/caseforge/internal/service/ledgerservice"
	"github.com/caseforge/caseforge/internal/service/openingservice"
)

type Services struct {
	Ledger    *ledgerservice.Service
	Catalog   *catalogservice.Service
	Opening   *openingservice.Service
	Inventory *inventoryservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier openingservice.Notifier) *Services {
	ledgerService := ledgerservice.New(repo.Ledger)
	catalogService := catalogservice.New(repo.Catalog)
	inventoryService := inventoryservice.New(repo.Inventory)
	openingService := openingservice.New(
		ledgerService,
		catalogService,
		repo.Inventory,
		repo.OpenRequest,
		txManager,
		drop.CryptoSource{},
		notifier,
	)

	return &Services{
		Ledger:    ledgerService,
		Catalog:   catalogService,
		Opening:   openingService,
		Inventory: inventoryService,
	}
}
