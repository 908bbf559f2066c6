package handlers

import (
	"context"

	"github.com/spec-kit/food-order-service/internal/api/dto"
	"github.com/spec-kit/food-order-service/internal/dispatch"
	"github.com/spec-kit/food-order-service/internal/service"
	"github.com/spec-kit/food-order-service/pkg/util"
)

// SessionHandler exposes login and logout.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login handles the login route. POST only.
func (h *SessionHandler) Login(ctx context.Context, req *dispatch.Request) (*dispatch.Response, error) {
	if req.Method != "post" {
		return nil, util.NewMethodNotAllowed(req.Method)
	}

	var body dto.LoginRequest
	if err := dto.Bind(req.Payload, &body); err != nil {
		return nil, err
	}

	token, err := h.sessions.Login(ctx, body.Email, body.Password)
	if err != nil {
		return nil, err
	}
	return dispatch.OK(map[string]any{"data": token}), nil
}

// Logout destroys the presented session token. POST only.
func (h *SessionHandler) Logout(ctx context.Context, req *dispatch.Request) (*dispatch.Response, error) {
	if req.Method != "post" {
		return nil, util.NewMethodNotAllowed(req.Method)
	}

	if err := h.sessions.Logout(ctx, req.Header(tokenHeader)); err != nil {
		return nil, err
	}
	return dispatch.OK(nil), nil
}
