package application

import (
	"context"
	"log/slog"

	"tradepost/contexts/internal-ops/admin-dashboard-service/ports"
)

// Service assembles the read-only views the admin role inspects. It owns no
// state of its own; everything is derived from the other modules' ledgers.
type Service struct {
	Directory ports.Directory
	Catalog   ports.Catalog
	Feedback  ports.Feedback
	Logger    *slog.Logger
}

func (s Service) UserDetails(ctx context.Context) (ports.UserDetails, error) {
	sellers, err := s.Directory.ListSellers(ctx)
	if err != nil {
		return ports.UserDetails{}, err
	}
	buyers, err := s.Directory.ListBuyers(ctx)
	if err != nil {
		return ports.UserDetails{}, err
	}
	return ports.UserDetails{
		Sellers: sellers,
		Buyers:  buyers,
	}, nil
}

func (s Service) ProductCount(ctx context.Context) (int, error) {
	products, err := s.Catalog.ListProducts(ctx)
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

func (s Service) ProductFeedbackReport(ctx context.Context) ([]ports.ProductSummary, error) {
	return s.Catalog.ListProducts(ctx)
}

func (s Service) SellerFeedbackReport(ctx context.Context) (ports.SellerFeedbackReport, error) {
	entries, err := s.Feedback.ListSellerFeedback(ctx)
	if err != nil {
		return ports.SellerFeedbackReport{}, err
	}

	report := ports.SellerFeedbackReport{
		Entries: entries,
		Count:   len(entries),
	}
	if len(entries) > 0 {
		var total int
		for _, entry := range entries {
			total += entry.Rating
		}
		report.OverallAverage = float64(total) / float64(len(entries))
	}
	return report, nil
}
