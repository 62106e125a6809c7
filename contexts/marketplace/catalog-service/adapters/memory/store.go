package memory

import (
	"context"
	"strings"
	"sync"

	domainerrors "tradepost/contexts/marketplace/catalog-service/domain/errors"
	"tradepost/contexts/marketplace/catalog-service/ports"
)

// Store keeps the full catalog in process memory. Products stay in insertion
// order so listings and search results are stable across calls.
type Store struct {
	mu       sync.RWMutex
	products []ports.Product
	nextID   int64
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

func (s *Store) AddProduct(ctx context.Context, input ports.CreateProductInput) (ports.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Quantity < 0 {
		return ports.Product{}, domainerrors.ErrInvalidQuantity
	}
	product := ports.Product{
		ID:              s.nextID,
		Name:            input.Name,
		Model:           input.Model,
		Category:        input.Category,
		OriginalPrice:   input.OriginalPrice,
		DiscountedPrice: input.DiscountedPrice,
		Description:     input.Description,
		Owner:           input.Owner,
		Reviews:         []string{},
		Quantity:        input.Quantity,
		SoldOut:         input.Quantity <= 0,
	}
	s.nextID++
	s.products = append(s.products, product)
	return cloneProduct(product), nil
}

func (s *Store) UpdateProduct(ctx context.Context, productID int64, input ports.UpdateProductInput) (ports.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.indexOf(productID)
	if !ok {
		return ports.Product{}, domainerrors.ErrProductNotFound
	}
	if input.Quantity < 0 {
		return ports.Product{}, domainerrors.ErrInvalidQuantity
	}
	product := &s.products[i]
	product.Name = input.Name
	product.Model = input.Model
	product.Category = input.Category
	product.DiscountedPrice = input.DiscountedPrice
	product.Quantity = input.Quantity
	product.SoldOut = product.Quantity <= 0
	return cloneProduct(*product), nil
}

func (s *Store) RemoveProduct(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.indexOf(productID)
	if !ok {
		return domainerrors.ErrProductNotFound
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return nil
}

func (s *Store) GetProduct(ctx context.Context, productID int64) (ports.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.indexOf(productID)
	if !ok {
		return ports.Product{}, domainerrors.ErrProductNotFound
	}
	return cloneProduct(s.products[i]), nil
}

// ListProducts returns every listing, sold-out ones included. Callers decide
// how to flag them; the catalog never hides a product.
func (s *Store) ListProducts(ctx context.Context) ([]ports.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Product, 0, len(s.products))
	for _, product := range s.products {
		items = append(items, cloneProduct(product))
	}
	return items, nil
}

func (s *Store) SearchByName(ctx context.Context, query string) ([]ports.Product, error) {
	return s.search(func(p ports.Product) bool {
		return containsFold(p.Name, query)
	})
}

func (s *Store) SearchByCategory(ctx context.Context, query string) ([]ports.Product, error) {
	return s.search(func(p ports.Product) bool {
		return containsFold(p.Category, query)
	})
}

func (s *Store) SearchByMaxPrice(ctx context.Context, limit int64) ([]ports.Product, error) {
	return s.search(func(p ports.Product) bool {
		return p.DiscountedPrice <= limit
	})
}

func (s *Store) ReserveUnit(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.indexOf(productID)
	if !ok {
		return domainerrors.ErrProductNotFound
	}
	product := &s.products[i]
	if product.Quantity <= 0 {
		return domainerrors.ErrSoldOut
	}
	product.Quantity--
	product.SoldOut = product.Quantity <= 0
	return nil
}

// ReleaseUnit restores exactly one unit. A missing product means the listing
// was deleted after the order was placed; the restore silently drops.
func (s *Store) ReleaseUnit(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.indexOf(productID)
	if !ok {
		return nil
	}
	product := &s.products[i]
	product.Quantity++
	product.SoldOut = product.Quantity <= 0
	return nil
}

func (s *Store) RecordReview(ctx context.Context, productID int64, review string, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.indexOf(productID)
	if !ok {
		return domainerrors.ErrProductNotFound
	}
	product := &s.products[i]
	product.Reviews = append(product.Reviews, review)
	product.Rating = rating
	return nil
}

func (s *Store) search(match func(ports.Product) bool) ([]ports.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Product, 0)
	for _, product := range s.products {
		if match(product) {
			items = append(items, cloneProduct(product))
		}
	}
	return items, nil
}

func (s *Store) indexOf(productID int64) (int, bool) {
	for i := range s.products {
		if s.products[i].ID == productID {
			return i, true
		}
	}
	return 0, false
}

func containsFold(value string, query string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

func cloneProduct(in ports.Product) ports.Product {
	out := in
	out.Reviews = append([]string(nil), in.Reviews...)
	return out
}

var _ ports.Repository = (*Store)(nil)
var _ ports.Inventory = (*Store)(nil)
var _ ports.Reviews = (*Store)(nil)
