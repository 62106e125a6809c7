package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "tradepost/contexts/identity-access/user-directory/domain/errors"
	"tradepost/contexts/identity-access/user-directory/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

// RegisterUser creates a seller or buyer record. Admin accounts are seeded
// at process start, never registered. Sellers must provide a contact number;
// it is rejected for buyers.
func (s Service) RegisterUser(ctx context.Context, input ports.RegisterUserInput) (ports.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.ContactNumber = strings.TrimSpace(input.ContactNumber)
	if input.Username == "" || input.Password == "" {
		return ports.User{}, domainerrors.ErrInvalidRequest
	}

	switch input.Role {
	case ports.RoleSeller:
		if input.ContactNumber == "" {
			return ports.User{}, domainerrors.ErrInvalidRequest
		}
	case ports.RoleBuyer:
		if input.ContactNumber != "" {
			return ports.User{}, domainerrors.ErrInvalidRequest
		}
	default:
		return ports.User{}, domainerrors.ErrInvalidRole
	}

	user, err := s.Repo.RegisterUser(ctx, input, s.now())
	if err != nil {
		return ports.User{}, err
	}

	resolveLogger(s.Logger).Debug("user registered",
		"event", "user_registered",
		"module", "identity-access/user-directory",
		"layer", "application",
		"username", user.Username,
		"role", string(user.Role),
	)
	return user, nil
}

func (s Service) GetUser(ctx context.Context, username string) (ports.User, error) {
	if strings.TrimSpace(username) == "" {
		return ports.User{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.GetUser(ctx, username)
}

func (s Service) ListUsers(ctx context.Context) ([]ports.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s Service) ListByRole(ctx context.Context, role ports.Role) ([]ports.User, error) {
	return s.Repo.ListByRole(ctx, role)
}

func (s Service) SetSubscription(ctx context.Context, username string, subscription ports.Subscription) error {
	if strings.TrimSpace(username) == "" {
		return domainerrors.ErrInvalidRequest
	}
	return s.Repo.SetSubscription(ctx, username, subscription)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
