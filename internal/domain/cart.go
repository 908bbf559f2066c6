package domain

// CartItem is a single product/size/quantity selection in a user's cart.
type CartItem struct {
	ProductID string `json:"productId"`
	Size      Size   `json:"size"`
	Quantity  int64  `json:"quantity"`
}

// PricedLineItem is a cart item expanded against the menu. Derived, never
// persisted.
type PricedLineItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Size      Size   `json:"size"`
	UnitPrice int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	LineTotal int64  `json:"total"`
}
