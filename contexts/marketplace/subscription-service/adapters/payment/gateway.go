package paymentadapter

import (
	"context"
	"log/slog"

	"tradepost/contexts/marketplace/subscription-service/ports"
)

// StubGateway confirms every charge. There is no real transfer; the two
// channels only differ in the confirmation they log.
type StubGateway struct {
	Logger *slog.Logger
}

func (g StubGateway) Charge(ctx context.Context, channel ports.Channel, amount int64) error {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("payment confirmed",
		"event", "subscription_payment_confirmed",
		"module", "marketplace/subscription-service",
		"layer", "adapter",
		"channel", string(channel),
		"amount", amount,
	)
	return nil
}

var _ ports.Gateway = StubGateway{}
