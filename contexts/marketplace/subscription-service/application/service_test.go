package application

import (
	"context"
	"errors"
	"testing"
	"time"

	directorymemory "tradepost/contexts/identity-access/user-directory/adapters/memory"
	directoryports "tradepost/contexts/identity-access/user-directory/ports"
	directoryadapter "tradepost/contexts/marketplace/subscription-service/adapters/directory"
	paymentadapter "tradepost/contexts/marketplace/subscription-service/adapters/payment"
	domainerrors "tradepost/contexts/marketplace/subscription-service/domain/errors"
)

func TestProcessActivatesChosenPlan(t *testing.T) {
	users, service := subscriptionFixture(t)
	now := time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC)
	service.Clock = fixedClock{now: now}
	ctx := context.Background()

	receipt, err := service.Process(ctx, "buyer_a", "premium", "gpay")
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if receipt.PlanName != "Premium" || receipt.Amount != 1000 {
		t.Fatalf("expected Premium for 1000, got %s for %d", receipt.PlanName, receipt.Amount)
	}
	if receipt.ReceiptID == "" {
		t.Fatal("expected a receipt id")
	}
	if !receipt.PaidAt.Equal(now) {
		t.Fatalf("expected paid-at %v, got %v", now, receipt.PaidAt)
	}

	user, err := users.GetUser(ctx, "buyer_a")
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if user.Subscription != directoryports.SubscriptionPremium {
		t.Fatalf("expected premium tag, got %s", user.Subscription)
	}
}

func TestProcessRejectsUnknownPlanWithoutStateChange(t *testing.T) {
	users, service := subscriptionFixture(t)
	ctx := context.Background()

	_, err := service.Process(ctx, "buyer_a", "platinum", "gpay")
	if !errors.Is(err, domainerrors.ErrUnknownPlan) {
		t.Fatalf("expected unknown plan, got %v", err)
	}

	user, err := users.GetUser(ctx, "buyer_a")
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if user.Subscription != directoryports.SubscriptionNone {
		t.Fatalf("expected subscription untouched, got %s", user.Subscription)
	}
}

func TestProcessRejectsUnknownChannelWithoutStateChange(t *testing.T) {
	users, service := subscriptionFixture(t)
	ctx := context.Background()

	_, err := service.Process(ctx, "buyer_a", "basic", "cheque")
	if !errors.Is(err, domainerrors.ErrUnknownChannel) {
		t.Fatalf("expected unknown channel, got %v", err)
	}

	user, err := users.GetUser(ctx, "buyer_a")
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if user.Subscription != directoryports.SubscriptionNone {
		t.Fatalf("expected subscription untouched, got %s", user.Subscription)
	}
}

func TestProcessUnknownUser(t *testing.T) {
	_, service := subscriptionFixture(t)

	_, err := service.Process(context.Background(), "ghost", "basic", "card")
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func subscriptionFixture(t *testing.T) (*directorymemory.Store, Service) {
	t.Helper()
	users := directorymemory.NewStore()
	_, err := users.RegisterUser(context.Background(), directoryports.RegisterUserInput{
		Username: "buyer_a",
		Password: "pw",
		Role:     directoryports.RoleBuyer,
	}, time.Now().UTC())
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return users, Service{
		Gateway:   paymentadapter.StubGateway{},
		Directory: directoryadapter.Directory{Users: users},
		IDGen:     paymentadapter.UUIDGenerator{},
		Currency:  "INR",
	}
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }
