package dispatcherservice

import (
	"log/slog"

	"tradepost/contexts/identity-access/dispatcher-service/application"
	"tradepost/contexts/identity-access/dispatcher-service/domain/policy"
	directoryapp "tradepost/contexts/identity-access/user-directory/application"
	admindashboardapp "tradepost/contexts/internal-ops/admin-dashboard-service/application"
	catalogapp "tradepost/contexts/marketplace/catalog-service/application"
	feedbackapp "tradepost/contexts/marketplace/feedback-service/application"
	orderapp "tradepost/contexts/marketplace/order-service/application"
	subscriptionapp "tradepost/contexts/marketplace/subscription-service/application"
)

type Module struct {
	Dispatcher application.Dispatcher
}

// Dependencies carries the already-assembled application services of every
// module the dispatcher routes to. A nil Policy falls back to the default
// capability table.
type Dependencies struct {
	Policy        policy.Table
	Catalog       catalogapp.Service
	Orders        orderapp.Service
	Feedback      feedbackapp.Service
	Subscriptions subscriptionapp.Service
	Directory     directoryapp.Service
	Dashboard     admindashboardapp.Service
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Dispatcher: application.Dispatcher{
			Policy:        deps.Policy,
			Catalog:       deps.Catalog,
			Orders:        deps.Orders,
			Feedback:      deps.Feedback,
			Subscriptions: deps.Subscriptions,
			Directory:     deps.Directory,
			Dashboard:     deps.Dashboard,
			Logger:        deps.Logger,
		},
	}
}
