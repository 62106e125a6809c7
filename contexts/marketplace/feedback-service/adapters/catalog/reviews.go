package catalogadapter

import (
	"context"
	"errors"

	catalogerrors "tradepost/contexts/marketplace/catalog-service/domain/errors"
	catalogports "tradepost/contexts/marketplace/catalog-service/ports"
	"tradepost/contexts/marketplace/feedback-service/ports"
)

// Reviews writes accepted reviews back onto the catalog listing. A listing
// deleted after purchase drops the write-back; the ledger record remains.
type Reviews struct {
	Catalog catalogports.Reviews
}

func (a Reviews) RecordReview(ctx context.Context, productID int64, review string, rating float64) error {
	err := a.Catalog.RecordReview(ctx, productID, review, rating)
	if errors.Is(err, catalogerrors.ErrProductNotFound) {
		return nil
	}
	return err
}

var _ ports.ProductReviews = Reviews{}
