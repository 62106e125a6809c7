package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "tradepost/contexts/marketplace/feedback-service/domain/errors"
	"tradepost/contexts/marketplace/feedback-service/ports"
)

type Service struct {
	Repo      ports.Repository
	Purchases ports.Purchases
	Reviews   ports.ProductReviews
	Logger    *slog.Logger
}

// SubmitBuyerFeedback gates on purchase history, stores the record, then
// pushes the review text and recomputed average onto the listing. All checks
// run before the first mutation.
func (s Service) SubmitBuyerFeedback(ctx context.Context, buyer string, productID int64, review string, rating int) error {
	if strings.TrimSpace(buyer) == "" || productID <= 0 {
		return domainerrors.ErrInvalidRequest
	}
	if rating < 1 || rating > 5 {
		return domainerrors.ErrInvalidRating
	}

	purchased, err := s.Purchases.HasPurchase(ctx, buyer, productID)
	if err != nil {
		return err
	}
	if !purchased {
		return domainerrors.ErrNotPurchased
	}

	summary, err := s.Repo.AppendBuyerFeedback(ctx, ports.BuyerFeedback{
		Buyer:     buyer,
		ProductID: productID,
		Review:    review,
		Rating:    rating,
	})
	if err != nil {
		return err
	}
	if err := s.Reviews.RecordReview(ctx, productID, review, summary.Average); err != nil {
		return err
	}

	resolveLogger(s.Logger).Debug("buyer feedback recorded",
		"event", "buyer_feedback_recorded",
		"module", "marketplace/feedback-service",
		"layer", "application",
		"product_id", productID,
		"rating", rating,
		"product_average", summary.Average,
	)
	return nil
}

func (s Service) SubmitSellerFeedback(ctx context.Context, seller string, review string, rating int) error {
	if strings.TrimSpace(seller) == "" {
		return domainerrors.ErrInvalidRequest
	}
	if rating < 1 || rating > 5 {
		return domainerrors.ErrInvalidRating
	}

	if err := s.Repo.AppendSellerFeedback(ctx, ports.SellerFeedback{
		Seller: seller,
		Review: review,
		Rating: rating,
	}); err != nil {
		return err
	}

	resolveLogger(s.Logger).Debug("seller feedback recorded",
		"event", "seller_feedback_recorded",
		"module", "marketplace/feedback-service",
		"layer", "application",
		"seller", seller,
		"rating", rating,
	)
	return nil
}

// AverageRating aggregates for a seller the platform feedback they submitted
// and for a buyer the product ratings they handed out. A zero-count summary
// means no data, which is not an error.
func (s Service) AverageRating(ctx context.Context, username string, role ports.Role) (ports.RatingSummary, error) {
	if strings.TrimSpace(username) == "" {
		return ports.RatingSummary{}, domainerrors.ErrInvalidRequest
	}
	switch role {
	case ports.RoleSeller:
		return s.Repo.SellerAverage(ctx, username)
	case ports.RoleBuyer:
		return s.Repo.BuyerAverage(ctx, username)
	default:
		return ports.RatingSummary{}, domainerrors.ErrInvalidRequest
	}
}

func (s Service) ListSellerFeedback(ctx context.Context) ([]ports.SellerFeedback, error) {
	return s.Repo.ListSellerFeedback(ctx)
}
