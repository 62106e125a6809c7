package orderservice

import (
	"log/slog"

	catalogports "tradepost/contexts/marketplace/catalog-service/ports"
	catalogadapter "tradepost/contexts/marketplace/order-service/adapters/catalog"
	"tradepost/contexts/marketplace/order-service/adapters/memory"
	"tradepost/contexts/marketplace/order-service/application"
	"tradepost/contexts/marketplace/order-service/ports"
)

type Module struct {
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Service: application.Service{
			Repo:   deps.Repository,
			Clock:  deps.Clock,
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule wires the ledger against a catalog for its inventory
// side effects.
func NewInMemoryModule(catalog catalogports.Inventory, logger *slog.Logger) Module {
	store := memory.NewStore(catalogadapter.Inventory{Catalog: catalog})
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
