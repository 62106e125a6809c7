package catalogadapter

import (
	"context"
	"errors"

	catalogerrors "tradepost/contexts/marketplace/catalog-service/domain/errors"
	catalogports "tradepost/contexts/marketplace/catalog-service/ports"
	domainerrors "tradepost/contexts/marketplace/order-service/domain/errors"
	"tradepost/contexts/marketplace/order-service/ports"
)

// Inventory bridges the order ledger to the catalog's stock operations and
// translates catalog sentinels into the ledger's own error vocabulary.
type Inventory struct {
	Catalog catalogports.Inventory
}

func (a Inventory) ReserveUnit(ctx context.Context, productID int64) error {
	err := a.Catalog.ReserveUnit(ctx, productID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, catalogerrors.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, catalogerrors.ErrSoldOut):
		return domainerrors.ErrSoldOut
	default:
		return err
	}
}

func (a Inventory) ReleaseUnit(ctx context.Context, productID int64) error {
	return a.Catalog.ReleaseUnit(ctx, productID)
}

var _ ports.Inventory = Inventory{}
