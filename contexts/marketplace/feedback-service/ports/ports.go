package ports

import "context"

type Role string

const (
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

type BuyerFeedback struct {
	Buyer     string
	ProductID int64
	Review    string
	Rating    int
}

// SellerFeedback is platform-level: sellers rate the marketplace itself,
// not individual products.
type SellerFeedback struct {
	Seller string
	Review string
	Rating int
}

// RatingSummary is an aggregation result. Count zero is the "no data"
// sentinel; Average is meaningless in that case.
type RatingSummary struct {
	Average float64
	Count   int
}

// Purchases is the order ledger seen through the feedback ledger: has this
// buyer ever ordered this product, cancelled or not.
type Purchases interface {
	HasPurchase(ctx context.Context, buyer string, productID int64) (bool, error)
}

// ProductReviews pushes accepted reviews back onto the catalog listing.
type ProductReviews interface {
	RecordReview(ctx context.Context, productID int64, review string, rating float64) error
}

type Repository interface {
	// AppendBuyerFeedback stores the record and returns the product's
	// recomputed rating summary including the new entry.
	AppendBuyerFeedback(ctx context.Context, feedback BuyerFeedback) (RatingSummary, error)
	AppendSellerFeedback(ctx context.Context, feedback SellerFeedback) error
	BuyerAverage(ctx context.Context, buyer string) (RatingSummary, error)
	SellerAverage(ctx context.Context, seller string) (RatingSummary, error)
	ListSellerFeedback(ctx context.Context) ([]SellerFeedback, error)
}
