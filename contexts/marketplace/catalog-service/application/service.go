package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "tradepost/contexts/marketplace/catalog-service/domain/errors"
	"tradepost/contexts/marketplace/catalog-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

func (s Service) AddProduct(ctx context.Context, input ports.CreateProductInput) (ports.Product, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Owner) == "" {
		return ports.Product{}, domainerrors.ErrInvalidRequest
	}
	if input.OriginalPrice < 0 || input.DiscountedPrice < 0 {
		return ports.Product{}, domainerrors.ErrInvalidRequest
	}
	if input.Quantity < 0 {
		return ports.Product{}, domainerrors.ErrInvalidQuantity
	}

	product, err := s.Repo.AddProduct(ctx, input)
	if err != nil {
		return ports.Product{}, err
	}

	resolveLogger(s.Logger).Debug("product listed",
		"event", "catalog_product_listed",
		"module", "marketplace/catalog-service",
		"layer", "application",
		"product_id", product.ID,
		"owner", product.Owner,
	)
	return product, nil
}

func (s Service) UpdateProduct(ctx context.Context, productID int64, input ports.UpdateProductInput) (ports.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return ports.Product{}, domainerrors.ErrInvalidRequest
	}
	if input.DiscountedPrice < 0 {
		return ports.Product{}, domainerrors.ErrInvalidRequest
	}
	if input.Quantity < 0 {
		return ports.Product{}, domainerrors.ErrInvalidQuantity
	}
	return s.Repo.UpdateProduct(ctx, productID, input)
}

func (s Service) RemoveProduct(ctx context.Context, productID int64) error {
	if err := s.Repo.RemoveProduct(ctx, productID); err != nil {
		return err
	}
	resolveLogger(s.Logger).Debug("product removed",
		"event", "catalog_product_removed",
		"module", "marketplace/catalog-service",
		"layer", "application",
		"product_id", productID,
	)
	return nil
}

func (s Service) GetProduct(ctx context.Context, productID int64) (ports.Product, error) {
	return s.Repo.GetProduct(ctx, productID)
}

func (s Service) ListProducts(ctx context.Context) ([]ports.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s Service) SearchByName(ctx context.Context, query string) ([]ports.Product, error) {
	return s.Repo.SearchByName(ctx, strings.TrimSpace(query))
}

func (s Service) SearchByCategory(ctx context.Context, query string) ([]ports.Product, error) {
	return s.Repo.SearchByCategory(ctx, strings.TrimSpace(query))
}

func (s Service) SearchByMaxPrice(ctx context.Context, limit int64) ([]ports.Product, error) {
	if limit < 0 {
		return nil, domainerrors.ErrInvalidRequest
	}
	return s.Repo.SearchByMaxPrice(ctx, limit)
}
