package handlers

import (
	"context"

	"github.com/spec-kit/food-order-service/internal/api/dto"
	"github.com/spec-kit/food-order-service/internal/dispatch"
	"github.com/spec-kit/food-order-service/internal/domain"
	"github.com/spec-kit/food-order-service/internal/service"
	"github.com/spec-kit/food-order-service/pkg/util"
)

// CartHandler exposes the shopping cart route.
type CartHandler struct {
	carts    *service.CartService
	sessions *service.SessionService
}

// NewCartHandler constructs handler.
func NewCartHandler(carts *service.CartService, sessions *service.SessionService) *CartHandler {
	return &CartHandler{carts: carts, sessions: sessions}
}

// Handle routes by method: GET reads the cart, PUT/POST replace it.
func (h *CartHandler) Handle(ctx context.Context, req *dispatch.Request) (*dispatch.Response, error) {
	token, err := requireSession(ctx, h.sessions, req)
	if err != nil {
		return nil, err
	}

	switch req.Method {
	case "get":
		items, err := h.carts.Get(ctx, token.UserEmail)
		if err != nil {
			return nil, err
		}
		return dispatch.OK(map[string]any{"data": items}), nil
	case "put", "post":
		var body dto.CartUpdateRequest
		if err := dto.Bind(req.Payload, &body); err != nil {
			return nil, err
		}

		items := make([]domain.CartItem, 0, len(body.Items))
		for _, item := range body.Items {
			items = append(items, domain.CartItem{
				ProductID: item.ProductID,
				Size:      domain.Size(item.Size),
				Quantity:  item.Quantity,
			})
		}

		saved, err := h.carts.Put(ctx, token.UserEmail, items)
		if err != nil {
			return nil, err
		}
		return dispatch.OK(map[string]any{"data": saved}), nil
	default:
		return nil, util.NewMethodNotAllowed(req.Method)
	}
}
