package ports

import (
	"context"
	"strings"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type PlanKey string

const (
	PlanBasic   PlanKey = "basic"
	PlanPremium PlanKey = "premium"
)

// Plan is a subscription offer. Amount is in whole currency units per month.
type Plan struct {
	Key    PlanKey
	Name   string
	Amount int64
}

func DefaultPlans() []Plan {
	return []Plan{
		{Key: PlanBasic, Name: "Basic", Amount: 500},
		{Key: PlanPremium, Name: "Premium", Amount: 1000},
	}
}

type Channel string

const (
	ChannelGPay Channel = "gpay"
	ChannelCard Channel = "card"
)

func ParseChannel(raw string) (Channel, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(ChannelGPay):
		return ChannelGPay, true
	case string(ChannelCard), "credit_card":
		return ChannelCard, true
	default:
		return "", false
	}
}

// Receipt records a completed (stubbed) payment.
type Receipt struct {
	ReceiptID string
	Username  string
	PlanName  string
	Channel   Channel
	Amount    int64
	Currency  string
	PaidAt    time.Time
}

// Gateway performs the payment leg. The stub implementation confirms every
// charge without any external transfer.
type Gateway interface {
	Charge(ctx context.Context, channel Channel, amount int64) error
}

// Directory tags the user with the activated plan name.
type Directory interface {
	SetSubscription(ctx context.Context, username string, planName string) error
}
