package ports

import (
	"context"
	"strings"
	"time"
)

type Clock interface {
	Now() time.Time
}

type Role string

const (
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
	RoleAdmin  Role = "admin"
)

func ParseRole(raw string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(RoleSeller):
		return RoleSeller, true
	case string(RoleBuyer):
		return RoleBuyer, true
	case string(RoleAdmin):
		return RoleAdmin, true
	default:
		return "", false
	}
}

type Subscription string

const (
	SubscriptionNone    Subscription = "none"
	SubscriptionBasic   Subscription = "basic"
	SubscriptionPremium Subscription = "premium"
)

func ParseSubscription(raw string) (Subscription, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(SubscriptionBasic):
		return SubscriptionBasic, true
	case string(SubscriptionPremium):
		return SubscriptionPremium, true
	case string(SubscriptionNone):
		return SubscriptionNone, true
	default:
		return "", false
	}
}

// User is a directory record. ContactNumber is set for sellers only.
// Users are never deleted.
type User struct {
	Username      string
	Password      string
	Role          Role
	Subscription  Subscription
	ContactNumber string
	CreatedAt     time.Time
}

type RegisterUserInput struct {
	Username      string
	Password      string
	Role          Role
	ContactNumber string
}

type Repository interface {
	RegisterUser(ctx context.Context, input RegisterUserInput, now time.Time) (User, error)
	GetUser(ctx context.Context, username string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	SetSubscription(ctx context.Context, username string, subscription Subscription) error
}
