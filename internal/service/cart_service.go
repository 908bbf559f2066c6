package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/food-order-service/internal/catalog"
	"github.com/spec-kit/food-order-service/internal/domain"
	"github.com/spec-kit/food-order-service/internal/repository"
	"github.com/spec-kit/food-order-service/pkg/util"
)

// CartService reads and replaces a user's shopping cart. Items are checked
// against the menu on write so a cart never holds unpriceable selections.
type CartService struct {
	carts repository.CartStore
	menu  catalog.Catalog
}

// NewCartService builds the service.
func NewCartService(carts repository.CartStore, menu catalog.Catalog) *CartService {
	return &CartService{carts: carts, menu: menu}
}

// Get returns the current cart, empty when none exists.
func (s *CartService) Get(ctx context.Context, userEmail string) ([]domain.CartItem, error) {
	return s.carts.Get(ctx, userEmail)
}

// Put replaces the cart contents.
func (s *CartService) Put(ctx context.Context, userEmail string, items []domain.CartItem) ([]domain.CartItem, error) {
	for i, item := range items {
		if item.Quantity < 1 {
			return nil, util.NewValidationError(
				fmt.Sprintf("item %d: quantity must be a positive integer", i), nil)
		}
		entry, ok := s.menu.Lookup(item.ProductID)
		if !ok {
			return nil, util.NewLookupError(
				fmt.Sprintf("unknown product %q", item.ProductID),
				map[string]any{"productId": item.ProductID})
		}
		if _, ok := entry.PriceFor(item.Size); !ok {
			return nil, util.NewLookupError(
				fmt.Sprintf("product %q has no size %q", item.ProductID, item.Size),
				map[string]any{"productId": item.ProductID, "size": item.Size})
		}
	}

	if err := s.carts.Put(ctx, userEmail, items); err != nil {
		return nil, err
	}
	return items, nil
}
