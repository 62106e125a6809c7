package memory

import (
	"context"
	"sync"
	"time"

	domainerrors "tradepost/contexts/marketplace/order-service/domain/errors"
	"tradepost/contexts/marketplace/order-service/ports"
)

// Store is the in-memory order ledger. Orders are append-only: cancellation
// flips the status but never removes the record, so history and tracking
// keep working.
type Store struct {
	mu        sync.RWMutex
	orders    []ports.Order
	nextID    int64
	inventory ports.Inventory
}

func NewStore(inventory ports.Inventory) *Store {
	return &Store{
		nextID:    1,
		inventory: inventory,
	}
}

func (s *Store) PlaceOrder(ctx context.Context, buyer string, productID int64, now time.Time) (ports.Order, error) {
	// Reserve against the catalog before touching the ledger so a sold-out
	// or missing product leaves no trace here.
	if err := s.inventory.ReserveUnit(ctx, productID); err != nil {
		return ports.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := ports.Order{
		ID:        s.nextID,
		Buyer:     buyer,
		ProductID: productID,
		Status:    ports.StatusPlaced,
		OrderDate: now.UTC(),
	}
	s.nextID++
	s.orders = append(s.orders, order)
	return order, nil
}

func (s *Store) CancelOrder(ctx context.Context, buyer string, orderID int64) (ports.Order, error) {
	s.mu.Lock()
	i, ok := s.indexOf(orderID)
	if !ok {
		s.mu.Unlock()
		return ports.Order{}, domainerrors.ErrOrderNotFound
	}
	order := &s.orders[i]
	if order.Buyer != buyer {
		s.mu.Unlock()
		return ports.Order{}, domainerrors.ErrNotOrderOwner
	}
	if order.Status == ports.StatusCancelled {
		s.mu.Unlock()
		return ports.Order{}, domainerrors.ErrAlreadyCancelled
	}
	order.Status = ports.StatusCancelled
	cancelled := *order
	s.mu.Unlock()

	// The release never fails: a listing deleted after purchase simply
	// swallows the returned unit.
	if err := s.inventory.ReleaseUnit(ctx, cancelled.ProductID); err != nil {
		return ports.Order{}, err
	}
	return cancelled, nil
}

func (s *Store) TrackOrder(ctx context.Context, buyer string, orderID int64) (ports.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.indexOf(orderID)
	if !ok {
		return ports.Order{}, domainerrors.ErrOrderNotFound
	}
	if s.orders[i].Buyer != buyer {
		return ports.Order{}, domainerrors.ErrNotOrderOwner
	}
	return s.orders[i], nil
}

func (s *Store) ListHistory(ctx context.Context, buyer string) ([]ports.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Order, 0)
	for _, order := range s.orders {
		if order.Buyer == buyer {
			items = append(items, order)
		}
	}
	return items, nil
}

func (s *Store) HasPurchase(ctx context.Context, buyer string, productID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		if order.Buyer == buyer && order.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) indexOf(orderID int64) (int, bool) {
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return i, true
		}
	}
	return 0, false
}

var _ ports.Repository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
