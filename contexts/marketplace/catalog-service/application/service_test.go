package application

import (
	"context"
	"errors"
	"testing"

	"tradepost/contexts/marketplace/catalog-service/adapters/memory"
	domainerrors "tradepost/contexts/marketplace/catalog-service/domain/errors"
	"tradepost/contexts/marketplace/catalog-service/ports"
)

func TestAddProductRejectsNegativeQuantity(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	_, err := service.AddProduct(context.Background(), ports.CreateProductInput{
		Name:     "Keyboard",
		Owner:    "seller_1",
		Quantity: -1,
	})
	if !errors.Is(err, domainerrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
}

func TestAddProductRequiresNameAndOwner(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	_, err := service.AddProduct(context.Background(), ports.CreateProductInput{
		Name:     "   ",
		Owner:    "seller_1",
		Quantity: 1,
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for blank name, got %v", err)
	}
}

func TestSearchByMaxPriceRejectsNegativeLimit(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	_, err := service.SearchByMaxPrice(context.Background(), -5)
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestEmptySearchResultIsNotAnError(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	matches, err := service.SearchByName(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected empty result, got %d", len(matches))
	}
}
