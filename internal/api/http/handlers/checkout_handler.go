package handlers

import (
	"context"

	"github.com/spec-kit/food-order-service/internal/dispatch"
	"github.com/spec-kit/food-order-service/internal/provider"
	"github.com/spec-kit/food-order-service/internal/service"
	"github.com/spec-kit/food-order-service/pkg/util"
)

// CheckoutHandler exposes the checkout route.
type CheckoutHandler struct {
	checkout *service.CheckoutService
	sessions *service.SessionService
}

// NewCheckoutHandler constructs handler.
func NewCheckoutHandler(checkout *service.CheckoutService, sessions *service.SessionService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, sessions: sessions}
}

// Handle charges the current cart. POST only. The response reports both
// provider outcomes; a failed receipt mail does not fail the checkout.
func (h *CheckoutHandler) Handle(ctx context.Context, req *dispatch.Request) (*dispatch.Response, error) {
	if req.Method != "post" {
		return nil, util.NewMethodNotAllowed(req.Method)
	}
	token, err := requireSession(ctx, h.sessions, req)
	if err != nil {
		return nil, err
	}

	result, err := h.checkout.Checkout(ctx, token.UserEmail)
	if err != nil {
		return nil, err
	}

	return dispatch.OK(map[string]any{"data": map[string]any{
		"order":   result.Order,
		"payment": providerView(result.Payment),
		"email":   providerView(result.Email),
	}}), nil
}

func providerView(result *provider.Result) map[string]any {
	if result == nil {
		return map[string]any{"status": 0, "response": map[string]any{}}
	}
	return map[string]any{"status": result.Status, "response": result.Body}
}
