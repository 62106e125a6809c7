package catalogadapter

import (
	"context"

	catalogports "tradepost/contexts/marketplace/catalog-service/ports"
	"tradepost/contexts/internal-ops/admin-dashboard-service/ports"
)

type Catalog struct {
	Products catalogports.Repository
}

func (a Catalog) ListProducts(ctx context.Context) ([]ports.ProductSummary, error) {
	products, err := a.Products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]ports.ProductSummary, 0, len(products))
	for _, product := range products {
		items = append(items, ports.ProductSummary{
			ProductID: product.ID,
			Name:      product.Name,
			Rating:    product.Rating,
			Reviews:   product.Reviews,
			Quantity:  product.Quantity,
			SoldOut:   product.SoldOut,
		})
	}
	return items, nil
}

var _ ports.Catalog = Catalog{}
