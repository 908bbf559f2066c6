package handlers

import (
	"context"

	"github.com/spec-kit/food-order-service/internal/catalog"
	"github.com/spec-kit/food-order-service/internal/dispatch"
	"github.com/spec-kit/food-order-service/internal/service"
	"github.com/spec-kit/food-order-service/pkg/util"
)

// MenuHandler serves the menu catalog to authenticated users.
type MenuHandler struct {
	menu     catalog.Catalog
	sessions *service.SessionService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menu catalog.Catalog, sessions *service.SessionService) *MenuHandler {
	return &MenuHandler{menu: menu, sessions: sessions}
}

// Handle lists the menu. GET only.
func (h *MenuHandler) Handle(ctx context.Context, req *dispatch.Request) (*dispatch.Response, error) {
	if req.Method != "get" {
		return nil, util.NewMethodNotAllowed(req.Method)
	}
	if _, err := requireSession(ctx, h.sessions, req); err != nil {
		return nil, err
	}
	return dispatch.OK(map[string]any{"data": h.menu.Entries()}), nil
}
