package directoryadapter

import (
	"context"
	"errors"

	directoryerrors "tradepost/contexts/identity-access/user-directory/domain/errors"
	directoryports "tradepost/contexts/identity-access/user-directory/ports"
	domainerrors "tradepost/contexts/marketplace/subscription-service/domain/errors"
	"tradepost/contexts/marketplace/subscription-service/ports"
)

// Directory maps an activated plan name onto the user-directory
// subscription tag.
type Directory struct {
	Users directoryports.Repository
}

func (a Directory) SetSubscription(ctx context.Context, username string, planName string) error {
	tier, ok := directoryports.ParseSubscription(planName)
	if !ok {
		return domainerrors.ErrUnknownPlan
	}
	err := a.Users.SetSubscription(ctx, username, tier)
	if errors.Is(err, directoryerrors.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	return err
}

var _ ports.Directory = Directory{}
