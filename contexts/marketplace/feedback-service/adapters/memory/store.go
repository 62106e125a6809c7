package memory

import (
	"context"
	"sync"

	"tradepost/contexts/marketplace/feedback-service/ports"
)

// Store keeps both feedback ledgers in memory. Records are append-only.
type Store struct {
	mu             sync.RWMutex
	buyerFeedback  []ports.BuyerFeedback
	sellerFeedback []ports.SellerFeedback
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AppendBuyerFeedback(ctx context.Context, feedback ports.BuyerFeedback) (ports.RatingSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buyerFeedback = append(s.buyerFeedback, feedback)

	var total, count int
	for _, record := range s.buyerFeedback {
		if record.ProductID == feedback.ProductID {
			total += record.Rating
			count++
		}
	}
	return ports.RatingSummary{
		Average: float64(total) / float64(count),
		Count:   count,
	}, nil
}

func (s *Store) AppendSellerFeedback(ctx context.Context, feedback ports.SellerFeedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sellerFeedback = append(s.sellerFeedback, feedback)
	return nil
}

// BuyerAverage aggregates the ratings this buyer has handed out.
func (s *Store) BuyerAverage(ctx context.Context, buyer string) (ports.RatingSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total, count int
	for _, record := range s.buyerFeedback {
		if record.Buyer == buyer {
			total += record.Rating
			count++
		}
	}
	return summarize(total, count), nil
}

// SellerAverage aggregates the platform feedback submitted by this seller.
func (s *Store) SellerAverage(ctx context.Context, seller string) (ports.RatingSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total, count int
	for _, record := range s.sellerFeedback {
		if record.Seller == seller {
			total += record.Rating
			count++
		}
	}
	return summarize(total, count), nil
}

func (s *Store) ListSellerFeedback(ctx context.Context) ([]ports.SellerFeedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]ports.SellerFeedback(nil), s.sellerFeedback...), nil
}

func summarize(total int, count int) ports.RatingSummary {
	if count == 0 {
		return ports.RatingSummary{}
	}
	return ports.RatingSummary{
		Average: float64(total) / float64(count),
		Count:   count,
	}
}

var _ ports.Repository = (*Store)(nil)
