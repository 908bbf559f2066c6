package pricing

import (
	"errors"
	"fmt"

	"github.com/spec-kit/food-order-service/internal/catalog"
	"github.com/spec-kit/food-order-service/internal/domain"
)

// ErrEmptyCart is returned when a total is requested for a cart with no
// items.
var ErrEmptyCart = errors.New("cart is empty")

// LookupError reports a cart item referencing a product or size the menu
// does not carry.
type LookupError struct {
	ProductID string
	Size      domain.Size
}

func (e *LookupError) Error() string {
	if e.Size != "" {
		return fmt.Sprintf("menu has no size %q for product %q", e.Size, e.ProductID)
	}
	return fmt.Sprintf("menu has no product %q", e.ProductID)
}

// PriceCart expands cart items against the menu into priced line items,
// preserving input order. Line totals use integer arithmetic on minor
// currency units. An unknown product or size fails the whole operation.
func PriceCart(items []domain.CartItem, menu catalog.Catalog) ([]domain.PricedLineItem, error) {
	lines := make([]domain.PricedLineItem, 0, len(items))
	for _, item := range items {
		entry, ok := menu.Lookup(item.ProductID)
		if !ok {
			return nil, &LookupError{ProductID: item.ProductID}
		}
		unitPrice, ok := entry.PriceFor(item.Size)
		if !ok {
			return nil, &LookupError{ProductID: item.ProductID, Size: item.Size}
		}
		lines = append(lines, domain.PricedLineItem{
			ProductID: item.ProductID,
			Name:      entry.Name,
			Size:      item.Size,
			UnitPrice: unitPrice,
			Quantity:  item.Quantity,
			LineTotal: unitPrice * item.Quantity,
		})
	}
	return lines, nil
}

// TotalAmount reduces priced line items to the bill total. An empty cart is
// an explicit error rather than a zero total.
func TotalAmount(lines []domain.PricedLineItem) (int64, error) {
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}
	var total int64
	for _, line := range lines {
		total += line.LineTotal
	}
	return total, nil
}
