package feedbackadapter

import (
	"context"

	feedbackports "tradepost/contexts/marketplace/feedback-service/ports"
	"tradepost/contexts/internal-ops/admin-dashboard-service/ports"
)

type Feedback struct {
	Ledger feedbackports.Repository
}

func (a Feedback) ListSellerFeedback(ctx context.Context) ([]ports.SellerFeedbackEntry, error) {
	records, err := a.Ledger.ListSellerFeedback(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]ports.SellerFeedbackEntry, 0, len(records))
	for _, record := range records {
		items = append(items, ports.SellerFeedbackEntry{
			Seller: record.Seller,
			Review: record.Review,
			Rating: record.Rating,
		})
	}
	return items, nil
}

var _ ports.Feedback = Feedback{}
