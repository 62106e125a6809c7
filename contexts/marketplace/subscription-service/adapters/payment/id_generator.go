package paymentadapter

import (
	"context"

	"github.com/google/uuid"

	"tradepost/contexts/marketplace/subscription-service/ports"
)

// UUIDGenerator creates stable UUIDv4 receipt identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.IDGenerator = UUIDGenerator{}
