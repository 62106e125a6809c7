package admindashboard

import (
	"log/slog"

	directoryports "tradepost/contexts/identity-access/user-directory/ports"
	catalogadapter "tradepost/contexts/internal-ops/admin-dashboard-service/adapters/catalog"
	directoryadapter "tradepost/contexts/internal-ops/admin-dashboard-service/adapters/directory"
	feedbackadapter "tradepost/contexts/internal-ops/admin-dashboard-service/adapters/feedback"
	"tradepost/contexts/internal-ops/admin-dashboard-service/application"
	"tradepost/contexts/internal-ops/admin-dashboard-service/ports"
	catalogports "tradepost/contexts/marketplace/catalog-service/ports"
	feedbackports "tradepost/contexts/marketplace/feedback-service/ports"
)

type Module struct {
	Service application.Service
}

type Dependencies struct {
	Directory ports.Directory
	Catalog   ports.Catalog
	Feedback  ports.Feedback
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Service: application.Service{
			Directory: deps.Directory,
			Catalog:   deps.Catalog,
			Feedback:  deps.Feedback,
			Logger:    deps.Logger,
		},
	}
}

// NewInMemoryModule wires the dashboard against the live stores of the
// other modules.
func NewInMemoryModule(
	users directoryports.Repository,
	catalog catalogports.Repository,
	feedback feedbackports.Repository,
	logger *slog.Logger,
) Module {
	return NewModule(Dependencies{
		Directory: directoryadapter.Directory{Users: users},
		Catalog:   catalogadapter.Catalog{Products: catalog},
		Feedback:  feedbackadapter.Feedback{Ledger: feedback},
		Logger:    logger,
	})
}
