package domain

// Size identifies a portion size on the menu.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// MenuEntry is immutable reference data: a product with per-size prices in
// minor currency units.
type MenuEntry struct {
	ProductID string         `json:"productId"`
	Name      string         `json:"name"`
	Prices    map[Size]int64 `json:"price"`
}

// PriceFor returns the unit price for a size, with ok=false when the entry
// does not carry that size.
func (e MenuEntry) PriceFor(size Size) (int64, bool) {
	price, ok := e.Prices[size]
	return price, ok
}
