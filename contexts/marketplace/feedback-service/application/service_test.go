package application

import (
	"context"
	"errors"
	"testing"

	"tradepost/contexts/marketplace/feedback-service/adapters/memory"
	domainerrors "tradepost/contexts/marketplace/feedback-service/domain/errors"
	"tradepost/contexts/marketplace/feedback-service/ports"
)

func TestSubmitBuyerFeedbackRejectsOutOfRangeRating(t *testing.T) {
	store := memory.NewStore()
	reviews := &capturedReviews{}
	service := Service{
		Repo:      store,
		Purchases: stubPurchases{purchased: true},
		Reviews:   reviews,
	}

	err := service.SubmitBuyerFeedback(context.Background(), "buyer_a", 1, "great", 6)
	if !errors.Is(err, domainerrors.ErrInvalidRating) {
		t.Fatalf("expected invalid rating, got %v", err)
	}

	summary, err := store.BuyerAverage(context.Background(), "buyer_a")
	if err != nil {
		t.Fatalf("average failed: %v", err)
	}
	if summary.Count != 0 {
		t.Fatalf("expected ledger untouched, got %d records", summary.Count)
	}
	if len(reviews.recorded) != 0 {
		t.Fatal("expected no review write-back")
	}
}

func TestSubmitBuyerFeedbackRequiresPurchase(t *testing.T) {
	store := memory.NewStore()
	service := Service{
		Repo:      store,
		Purchases: stubPurchases{purchased: false},
		Reviews:   &capturedReviews{},
	}

	err := service.SubmitBuyerFeedback(context.Background(), "buyer_a", 1, "never bought it", 4)
	if !errors.Is(err, domainerrors.ErrNotPurchased) {
		t.Fatalf("expected not purchased, got %v", err)
	}

	summary, err := store.BuyerAverage(context.Background(), "buyer_a")
	if err != nil {
		t.Fatalf("average failed: %v", err)
	}
	if summary.Count != 0 {
		t.Fatalf("expected ledger untouched, got %d records", summary.Count)
	}
}

func TestSubmitBuyerFeedbackWritesRecomputedAverageBack(t *testing.T) {
	store := memory.NewStore()
	reviews := &capturedReviews{}
	service := Service{
		Repo:      store,
		Purchases: stubPurchases{purchased: true},
		Reviews:   reviews,
	}
	ctx := context.Background()

	if err := service.SubmitBuyerFeedback(ctx, "buyer_a", 7, "solid", 5); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if err := service.SubmitBuyerFeedback(ctx, "buyer_b", 7, "okay", 2); err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	if len(reviews.recorded) != 2 {
		t.Fatalf("expected 2 write-backs, got %d", len(reviews.recorded))
	}
	last := reviews.recorded[1]
	if last.rating != 3.5 {
		t.Fatalf("expected recomputed mean 3.5, got %v", last.rating)
	}
	if last.review != "okay" {
		t.Fatalf("expected review text forwarded, got %q", last.review)
	}
}

func TestAverageRatingNoDataSentinel(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	summary, err := service.AverageRating(context.Background(), "seller_quiet", ports.RoleSeller)
	if err != nil {
		t.Fatalf("average failed: %v", err)
	}
	if summary.Count != 0 {
		t.Fatalf("expected no-data sentinel, got count %d", summary.Count)
	}
	if summary.Average != 0 {
		t.Fatalf("expected zero-value summary, got average %v", summary.Average)
	}
}

func TestAverageRatingPerRole(t *testing.T) {
	store := memory.NewStore()
	service := Service{
		Repo:      store,
		Purchases: stubPurchases{purchased: true},
		Reviews:   &capturedReviews{},
	}
	ctx := context.Background()

	if err := service.SubmitSellerFeedback(ctx, "seller_1", "smooth payouts", 4); err != nil {
		t.Fatalf("seller feedback failed: %v", err)
	}
	if err := service.SubmitSellerFeedback(ctx, "seller_1", "search is slow", 2); err != nil {
		t.Fatalf("seller feedback failed: %v", err)
	}
	if err := service.SubmitBuyerFeedback(ctx, "buyer_a", 1, "fine", 5); err != nil {
		t.Fatalf("buyer feedback failed: %v", err)
	}

	sellerSummary, err := service.AverageRating(ctx, "seller_1", ports.RoleSeller)
	if err != nil {
		t.Fatalf("seller average failed: %v", err)
	}
	if sellerSummary.Count != 2 || sellerSummary.Average != 3 {
		t.Fatalf("expected seller mean 3 over 2 records, got %v over %d", sellerSummary.Average, sellerSummary.Count)
	}

	buyerSummary, err := service.AverageRating(ctx, "buyer_a", ports.RoleBuyer)
	if err != nil {
		t.Fatalf("buyer average failed: %v", err)
	}
	if buyerSummary.Count != 1 || buyerSummary.Average != 5 {
		t.Fatalf("expected buyer mean 5 over 1 record, got %v over %d", buyerSummary.Average, buyerSummary.Count)
	}
}

type stubPurchases struct {
	purchased bool
}

func (s stubPurchases) HasPurchase(_ context.Context, _ string, _ int64) (bool, error) {
	return s.purchased, nil
}

type capturedReview struct {
	productID int64
	review    string
	rating    float64
}

type capturedReviews struct {
	recorded []capturedReview
}

func (c *capturedReviews) RecordReview(_ context.Context, productID int64, review string, rating float64) error {
	c.recorded = append(c.recorded, capturedReview{productID: productID, review: review, rating: rating})
	return nil
}
