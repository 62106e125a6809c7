package directoryadapter

import (
	"context"

	directoryports "tradepost/contexts/identity-access/user-directory/ports"
	"tradepost/contexts/internal-ops/admin-dashboard-service/ports"
)

type Directory struct {
	Users directoryports.Repository
}

func (a Directory) ListSellers(ctx context.Context) ([]ports.UserSummary, error) {
	return a.listByRole(ctx, directoryports.RoleSeller)
}

func (a Directory) ListBuyers(ctx context.Context) ([]ports.UserSummary, error) {
	return a.listByRole(ctx, directoryports.RoleBuyer)
}

func (a Directory) listByRole(ctx context.Context, role directoryports.Role) ([]ports.UserSummary, error) {
	users, err := a.Users.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	items := make([]ports.UserSummary, 0, len(users))
	for _, user := range users {
		items = append(items, ports.UserSummary{
			Username:      user.Username,
			ContactNumber: user.ContactNumber,
			Subscription:  string(user.Subscription),
		})
	}
	return items, nil
}

var _ ports.Directory = Directory{}
