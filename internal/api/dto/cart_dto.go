package dto

// CartItemRequest is one selection in a cart update.
type CartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CartUpdateRequest replaces the cart contents.
type CartUpdateRequest struct {
	Items []CartItemRequest `json:"items" validate:"dive"`
}
