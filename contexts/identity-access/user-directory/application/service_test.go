package application

import (
	"context"
	"errors"
	"testing"

	"tradepost/contexts/identity-access/user-directory/adapters/memory"
	domainerrors "tradepost/contexts/identity-access/user-directory/domain/errors"
	"tradepost/contexts/identity-access/user-directory/ports"
)

func TestRegisterUserRejectsDuplicateUsername(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	if _, err := service.RegisterUser(ctx, sellerInput("seller_1")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := service.RegisterUser(ctx, sellerInput("seller_1"))
	if !errors.Is(err, domainerrors.ErrUserExists) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
}

func TestRegisterSellerRequiresContactNumber(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	input := sellerInput("seller_1")
	input.ContactNumber = ""
	_, err := service.RegisterUser(context.Background(), input)
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestRegisterBuyerRejectsContactNumber(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	_, err := service.RegisterUser(context.Background(), ports.RegisterUserInput{
		Username:      "buyer_a",
		Password:      "pw",
		Role:          ports.RoleBuyer,
		ContactNumber: "555-0100",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestRegisterAdminIsRejected(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	_, err := service.RegisterUser(context.Background(), ports.RegisterUserInput{
		Username: "root",
		Password: "pw",
		Role:     ports.RoleAdmin,
	})
	if !errors.Is(err, domainerrors.ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}
}

func TestNewUserStartsWithoutSubscription(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	user, err := service.RegisterUser(context.Background(), sellerInput("seller_1"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Subscription != ports.SubscriptionNone {
		t.Fatalf("expected no subscription, got %s", user.Subscription)
	}
}

func sellerInput(username string) ports.RegisterUserInput {
	return ports.RegisterUserInput{
		Username:      username,
		Password:      "pw",
		Role:          ports.RoleSeller,
		ContactNumber: "555-0100",
	}
}
