package ports

import "context"

type UserSummary struct {
	Username      string
	ContactNumber string
	Subscription  string
}

// UserDetails groups directory records the way the admin view presents
// them: sellers first, then buyers.
type UserDetails struct {
	Sellers []UserSummary
	Buyers  []UserSummary
}

type ProductSummary struct {
	ProductID int64
	Name      string
	Rating    float64
	Reviews   []string
	Quantity  int
	SoldOut   bool
}

type SellerFeedbackEntry struct {
	Seller string
	Review string
	Rating int
}

// SellerFeedbackReport lists every platform feedback record with the
// overall mean. Count zero is the "no data" sentinel.
type SellerFeedbackReport struct {
	Entries        []SellerFeedbackEntry
	OverallAverage float64
	Count          int
}

type Directory interface {
	ListSellers(ctx context.Context) ([]UserSummary, error)
	ListBuyers(ctx context.Context) ([]UserSummary, error)
}

type Catalog interface {
	ListProducts(ctx context.Context) ([]ProductSummary, error)
}

type Feedback interface {
	ListSellerFeedback(ctx context.Context) ([]SellerFeedbackEntry, error)
}
