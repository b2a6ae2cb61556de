package repo

import (
	"github.com/caseforge/caseforge/internal/pg"
	catalogrepo "github.com/caseforge/caseforge/internal/repo/catalog-repo"
	inventoryrepo "github.com/caseforge/caseforge/internal/repo/inventory-repo"
	ledgerrepo "github.com/caseforge/caseforge/internal/repo/ledger-repo"
	openrequestrepo "github.com/caseforge/caseforge/internal/repo/openrequest-repo"
)

type Repositories struct {
	Ledger      *ledgerrepo.Repository
	Inventory   *inventoryrepo.Repository
	Catalog     *catalogrepo.Repository
	OpenRequest *openrequestrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Ledger:      ledgerrepo.New(conn, txManager),
		Inventory:   inventoryrepo.New(conn),
		Catalog:     catalogrepo.New(conn),
		OpenRequest: openrequestrepo.New(conn),
	}
}
