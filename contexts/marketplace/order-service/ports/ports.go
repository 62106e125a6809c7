package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type Status string

// Shipped and Delivered are declared for forward compatibility with the
// fulfilment flow; no transition reaches them today.
const (
	StatusPlaced    Status = "placed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type Order struct {
	ID        int64
	Buyer     string
	ProductID int64
	Status    Status
	OrderDate time.Time
}

// Inventory is the catalog seen through the order ledger: reserve one unit
// when an order is placed, release one unit when it is cancelled.
type Inventory interface {
	ReserveUnit(ctx context.Context, productID int64) error
	ReleaseUnit(ctx context.Context, productID int64) error
}

type Repository interface {
	PlaceOrder(ctx context.Context, buyer string, productID int64, now time.Time) (Order, error)
	CancelOrder(ctx context.Context, buyer string, orderID int64) (Order, error)
	TrackOrder(ctx context.Context, buyer string, orderID int64) (Order, error)
	ListHistory(ctx context.Context, buyer string) ([]Order, error)
	HasPurchase(ctx context.Context, buyer string, productID int64) (bool, error)
}
