package orderledgeradapter

import (
	"context"

	"tradepost/contexts/marketplace/feedback-service/ports"
	orderports "tradepost/contexts/marketplace/order-service/ports"
)

// Purchases answers the purchase gate from the order ledger. Cancelled
// orders still count: the buyer did buy the product.
type Purchases struct {
	Orders orderports.Repository
}

func (a Purchases) HasPurchase(ctx context.Context, buyer string, productID int64) (bool, error) {
	return a.Orders.HasPurchase(ctx, buyer, productID)
}

var _ ports.Purchases = Purchases{}
