package subscriptionservice

import (
	"log/slog"

	directoryports "tradepost/contexts/identity-access/user-directory/ports"
	directoryadapter "tradepost/contexts/marketplace/subscription-service/adapters/directory"
	paymentadapter "tradepost/contexts/marketplace/subscription-service/adapters/payment"
	"tradepost/contexts/marketplace/subscription-service/application"
	"tradepost/contexts/marketplace/subscription-service/ports"
)

type Module struct {
	Service application.Service
}

type Dependencies struct {
	Plans     []ports.Plan
	Gateway   ports.Gateway
	Directory ports.Directory
	IDGen     ports.IDGenerator
	Clock     ports.Clock
	Currency  string
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Service: application.Service{
			Plans:     deps.Plans,
			Gateway:   deps.Gateway,
			Directory: deps.Directory,
			IDGen:     deps.IDGen,
			Clock:     deps.Clock,
			Currency:  deps.Currency,
			Logger:    deps.Logger,
		},
	}
}

// NewInMemoryModule wires the stub gateway and uuid receipts against a user
// directory.
func NewInMemoryModule(users directoryports.Repository, plans []ports.Plan, currency string, logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Plans:     plans,
		Gateway:   paymentadapter.StubGateway{Logger: logger},
		Directory: directoryadapter.Directory{Users: users},
		IDGen:     paymentadapter.UUIDGenerator{},
		Currency:  currency,
		Logger:    logger,
	})
}
