package handlers

import (
	"context"

	"github.com/spec-kit/food-order-service/internal/dispatch"
)

// PingHandler answers liveness checks with an empty payload.
type PingHandler struct{}

// NewPingHandler returns a new handler instance.
func NewPingHandler() *PingHandler {
	return &PingHandler{}
}

// Handle responds 200 {} to any method.
func (h *PingHandler) Handle(_ context.Context, _ *dispatch.Request) (*dispatch.Response, error) {
	return dispatch.OK(map[string]any{}), nil
}
