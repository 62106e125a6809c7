package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "tradepost/contexts/marketplace/order-service/domain/errors"
	"tradepost/contexts/marketplace/order-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) PlaceOrder(ctx context.Context, buyer string, productID int64) (ports.Order, error) {
	if strings.TrimSpace(buyer) == "" || productID <= 0 {
		return ports.Order{}, domainerrors.ErrInvalidRequest
	}

	order, err := s.Repo.PlaceOrder(ctx, buyer, productID, s.now())
	if err != nil {
		return ports.Order{}, err
	}

	resolveLogger(s.Logger).Debug("order placed",
		"event", "order_placed",
		"module", "marketplace/order-service",
		"layer", "application",
		"order_id", order.ID,
		"product_id", order.ProductID,
		"buyer", order.Buyer,
	)
	return order, nil
}

func (s Service) CancelOrder(ctx context.Context, buyer string, orderID int64) (ports.Order, error) {
	if strings.TrimSpace(buyer) == "" || orderID <= 0 {
		return ports.Order{}, domainerrors.ErrInvalidRequest
	}

	order, err := s.Repo.CancelOrder(ctx, buyer, orderID)
	if err != nil {
		return ports.Order{}, err
	}

	resolveLogger(s.Logger).Debug("order cancelled",
		"event", "order_cancelled",
		"module", "marketplace/order-service",
		"layer", "application",
		"order_id", order.ID,
		"product_id", order.ProductID,
	)
	return order, nil
}

func (s Service) TrackOrder(ctx context.Context, buyer string, orderID int64) (ports.Order, error) {
	if strings.TrimSpace(buyer) == "" || orderID <= 0 {
		return ports.Order{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.TrackOrder(ctx, buyer, orderID)
}

func (s Service) OrderHistory(ctx context.Context, buyer string) ([]ports.Order, error) {
	if strings.TrimSpace(buyer) == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	return s.Repo.ListHistory(ctx, buyer)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
