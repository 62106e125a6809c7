package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "tradepost/contexts/marketplace/subscription-service/domain/errors"
	"tradepost/contexts/marketplace/subscription-service/ports"
)

type Service struct {
	Plans     []ports.Plan
	Gateway   ports.Gateway
	Directory ports.Directory
	IDGen     ports.IDGenerator
	Clock     ports.Clock
	Currency  string
	Logger    *slog.Logger
}

func (s Service) ListPlans(ctx context.Context) []ports.Plan {
	return append([]ports.Plan(nil), s.plans()...)
}

// Process runs the two-step selection: plan, then payment channel. Both
// selections are validated before anything is charged or tagged, so an
// invalid choice aborts with no state change.
func (s Service) Process(ctx context.Context, username string, planChoice string, channelChoice string) (ports.Receipt, error) {
	if strings.TrimSpace(username) == "" {
		return ports.Receipt{}, domainerrors.ErrInvalidRequest
	}
	plan, ok := s.planByKey(planChoice)
	if !ok {
		return ports.Receipt{}, domainerrors.ErrUnknownPlan
	}
	channel, ok := ports.ParseChannel(channelChoice)
	if !ok {
		return ports.Receipt{}, domainerrors.ErrUnknownChannel
	}

	if err := s.Gateway.Charge(ctx, channel, plan.Amount); err != nil {
		return ports.Receipt{}, err
	}
	if err := s.Directory.SetSubscription(ctx, username, plan.Name); err != nil {
		return ports.Receipt{}, err
	}

	receiptID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Receipt{}, err
	}
	receipt := ports.Receipt{
		ReceiptID: receiptID,
		Username:  username,
		PlanName:  plan.Name,
		Channel:   channel,
		Amount:    plan.Amount,
		Currency:  s.Currency,
		PaidAt:    s.now(),
	}

	resolveLogger(s.Logger).Debug("subscription activated",
		"event", "subscription_activated",
		"module", "marketplace/subscription-service",
		"layer", "application",
		"username", username,
		"plan", plan.Name,
		"channel", string(channel),
		"receipt_id", receipt.ReceiptID,
	)
	return receipt, nil
}

func (s Service) plans() []ports.Plan {
	if len(s.Plans) == 0 {
		return ports.DefaultPlans()
	}
	return s.Plans
}

func (s Service) planByKey(raw string) (ports.Plan, bool) {
	key := ports.PlanKey(strings.ToLower(strings.TrimSpace(raw)))
	for _, plan := range s.plans() {
		if plan.Key == key {
			return plan, true
		}
	}
	return ports.Plan{}, false
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
