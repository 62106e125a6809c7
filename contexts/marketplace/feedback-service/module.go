package feedbackservice

import (
	"log/slog"

	catalogports "tradepost/contexts/marketplace/catalog-service/ports"
	catalogadapter "tradepost/contexts/marketplace/feedback-service/adapters/catalog"
	"tradepost/contexts/marketplace/feedback-service/adapters/memory"
	orderledgeradapter "tradepost/contexts/marketplace/feedback-service/adapters/orderledger"
	"tradepost/contexts/marketplace/feedback-service/application"
	"tradepost/contexts/marketplace/feedback-service/ports"
	orderports "tradepost/contexts/marketplace/order-service/ports"
)

type Module struct {
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Purchases  ports.Purchases
	Reviews    ports.ProductReviews
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Service: application.Service{
			Repo:      deps.Repository,
			Purchases: deps.Purchases,
			Reviews:   deps.Reviews,
			Logger:    deps.Logger,
		},
	}
}

// NewInMemoryModule wires the ledger against the order ledger for the
// purchase gate and the catalog for review write-backs.
func NewInMemoryModule(orders orderports.Repository, catalog catalogports.Reviews, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Purchases:  orderledgeradapter.Purchases{Orders: orders},
		Reviews:    catalogadapter.Reviews{Catalog: catalog},
		Logger:     logger,
	})
	module.Store = store
	return module
}
