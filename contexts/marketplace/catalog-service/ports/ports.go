package ports

import "context"

// Product is a catalog listing. Prices are whole currency units.
type Product struct {
	ID              int64
	Name            string
	Model           string
	Category        string
	OriginalPrice   int64
	DiscountedPrice int64
	Description     string
	Owner           string
	Reviews         []string
	Rating          float64
	Quantity        int
	SoldOut         bool
}

type CreateProductInput struct {
	Name            string
	Model           string
	Category        string
	OriginalPrice   int64
	DiscountedPrice int64
	Description     string
	Owner           string
	Quantity        int
}

// UpdateProductInput carries the mutable listing fields. The sold-out flag
// is derived from Quantity and never set directly.
type UpdateProductInput struct {
	Name            string
	Model           string
	Category        string
	DiscountedPrice int64
	Quantity        int
}

type Repository interface {
	AddProduct(ctx context.Context, input CreateProductInput) (Product, error)
	UpdateProduct(ctx context.Context, productID int64, input UpdateProductInput) (Product, error)
	RemoveProduct(ctx context.Context, productID int64) error
	GetProduct(ctx context.Context, productID int64) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	SearchByName(ctx context.Context, query string) ([]Product, error)
	SearchByCategory(ctx context.Context, query string) ([]Product, error)
	SearchByMaxPrice(ctx context.Context, limit int64) ([]Product, error)
}

// Inventory adjusts stock one unit at a time on behalf of the order ledger.
// ReleaseUnit on a product that no longer exists is a no-op.
type Inventory interface {
	ReserveUnit(ctx context.Context, productID int64) error
	ReleaseUnit(ctx context.Context, productID int64) error
}

// Reviews applies feedback-ledger write-backs: append one review text and
// overwrite the running average rating.
type Reviews interface {
	RecordReview(ctx context.Context, productID int64, review string, rating float64) error
}
