package bootstrap

import (
	"context"
	"log/slog"
	"time"

	dispatcherservice "tradepost/contexts/identity-access/dispatcher-service"
	dispatcherapp "tradepost/contexts/identity-access/dispatcher-service/application"
	userdirectory "tradepost/contexts/identity-access/user-directory"
	directoryports "tradepost/contexts/identity-access/user-directory/ports"
	admindashboard "tradepost/contexts/internal-ops/admin-dashboard-service"
	catalogservice "tradepost/contexts/marketplace/catalog-service"
	feedbackservice "tradepost/contexts/marketplace/feedback-service"
	orderservice "tradepost/contexts/marketplace/order-service"
	subscriptionservice "tradepost/contexts/marketplace/subscription-service"
	subscriptionports "tradepost/contexts/marketplace/subscription-service/ports"
	"tradepost/internal/platform/config"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

// App is the fully wired platform: every module backed by its in-memory
// store, cross-module side effects connected, admin account seeded.
type App struct {
	Config     config.Config
	Dispatcher dispatcherapp.Dispatcher
	Directory  directoryports.Repository
	Logger     *slog.Logger
}

func Build() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName)

	catalog := catalogservice.NewInMemoryModule(logger)
	directory := userdirectory.NewInMemoryModule(logger)
	orders := orderservice.NewInMemoryModule(catalog.Store, logger)
	feedback := feedbackservice.NewInMemoryModule(orders.Store, catalog.Store, logger)
	subscriptions := subscriptionservice.NewInMemoryModule(directory.Store, plans(cfg), cfg.Currency, logger)
	dashboard := admindashboard.NewInMemoryModule(directory.Store, catalog.Store, feedback.Store, logger)

	dispatcher := dispatcherservice.NewModule(dispatcherservice.Dependencies{
		Catalog:       catalog.Service,
		Orders:        orders.Service,
		Feedback:      feedback.Service,
		Subscriptions: subscriptions.Service,
		Directory:     directory.Service,
		Dashboard:     dashboard.Service,
		Logger:        logger,
	})

	app := &App{
		Config:     cfg,
		Dispatcher: dispatcher.Dispatcher,
		Directory:  directory.Store,
		Logger:     logger,
	}
	if err := app.seedAdmin(context.Background()); err != nil {
		return nil, err
	}

	logger.Info("platform wired",
		"event", "bootstrap_completed",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"admin", cfg.AdminUsername,
	)
	return app, nil
}

// seedAdmin writes the admin record straight into the directory store.
// Registration through the application layer only accepts sellers and
// buyers, so the admin account can only exist by being seeded here.
func (a *App) seedAdmin(ctx context.Context) error {
	_, err := a.Directory.RegisterUser(ctx, directoryports.RegisterUserInput{
		Username: a.Config.AdminUsername,
		Password: a.Config.AdminPassword,
		Role:     directoryports.RoleAdmin,
	}, time.Now().UTC())
	return err
}

func plans(cfg config.Config) []subscriptionports.Plan {
	return []subscriptionports.Plan{
		{Key: subscriptionports.PlanBasic, Name: "Basic", Amount: cfg.BasicPlanAmount},
		{Key: subscriptionports.PlanPremium, Name: "Premium", Amount: cfg.PremiumPlanAmount},
	}
}
