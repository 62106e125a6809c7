package application

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "tradepost/contexts/marketplace/order-service/domain/errors"
	"tradepost/contexts/marketplace/order-service/ports"
)

func TestPlaceOrderStampsClockTime(t *testing.T) {
	now := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)
	repo := &recordingRepo{}
	service := Service{Repo: repo, Clock: fixedClock{now: now}}

	order, err := service.PlaceOrder(context.Background(), "buyer_a", 1)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if !order.OrderDate.Equal(now) {
		t.Fatalf("expected order date %v, got %v", now, order.OrderDate)
	}
}

func TestPlaceOrderRejectsBlankBuyer(t *testing.T) {
	service := Service{Repo: &recordingRepo{}}

	_, err := service.PlaceOrder(context.Background(), "  ", 1)
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestTrackOrderRejectsNonPositiveID(t *testing.T) {
	service := Service{Repo: &recordingRepo{}}

	_, err := service.TrackOrder(context.Background(), "buyer_a", 0)
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

type recordingRepo struct {
	orders []ports.Order
}

func (r *recordingRepo) PlaceOrder(_ context.Context, buyer string, productID int64, now time.Time) (ports.Order, error) {
	order := ports.Order{
		ID:        int64(len(r.orders) + 1),
		Buyer:     buyer,
		ProductID: productID,
		Status:    ports.StatusPlaced,
		OrderDate: now,
	}
	r.orders = append(r.orders, order)
	return order, nil
}

func (r *recordingRepo) CancelOrder(_ context.Context, _ string, _ int64) (ports.Order, error) {
	return ports.Order{}, domainerrors.ErrOrderNotFound
}

func (r *recordingRepo) TrackOrder(_ context.Context, _ string, _ int64) (ports.Order, error) {
	return ports.Order{}, domainerrors.ErrOrderNotFound
}

func (r *recordingRepo) ListHistory(_ context.Context, buyer string) ([]ports.Order, error) {
	items := make([]ports.Order, 0)
	for _, order := range r.orders {
		if order.Buyer == buyer {
			items = append(items, order)
		}
	}
	return items, nil
}

func (r *recordingRepo) HasPurchase(_ context.Context, buyer string, productID int64) (bool, error) {
	for _, order := range r.orders {
		if order.Buyer == buyer && order.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}
