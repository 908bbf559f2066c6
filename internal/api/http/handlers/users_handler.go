package handlers

import (
	"context"

	"github.com/spec-kit/food-order-service/internal/api/dto"
	"github.com/spec-kit/food-order-service/internal/dispatch"
	"github.com/spec-kit/food-order-service/internal/service"
	"github.com/spec-kit/food-order-service/pkg/util"
)

// UsersHandler exposes account management on the users route.
type UsersHandler struct {
	accounts *service.AccountService
	sessions *service.SessionService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts *service.AccountService, sessions *service.SessionService) *UsersHandler {
	return &UsersHandler{accounts: accounts, sessions: sessions}
}

// Handle routes by method: POST creates an account; GET, PUT and DELETE
// require a session and operate on the authenticated account.
func (h *UsersHandler) Handle(ctx context.Context, req *dispatch.Request) (*dispatch.Response, error) {
	switch req.Method {
	case "post":
		return h.register(ctx, req)
	case "get":
		return h.get(ctx, req)
	case "put":
		return h.update(ctx, req)
	case "delete":
		return h.delete(ctx, req)
	default:
		return nil, util.NewMethodNotAllowed(req.Method)
	}
}

func (h *UsersHandler) register(ctx context.Context, req *dispatch.Request) (*dispatch.Response, error) {
	var body dto.UserRegisterRequest
	if err := dto.Bind(req.Payload, &body); err != nil {
		return nil, err
	}

	user, err := h.accounts.Register(ctx, body.Name, body.Email, body.StreetAddress, body.Password)
	if err != nil {
		return nil, err
	}
	return dispatch.WithStatus(201, map[string]any{"data": userView(user)}), nil
}

func (h *UsersHandler) get(ctx context.Context, req *dispatch.Request) (*dispatch.Response, error) {
	token, err := requireSession(ctx, h.sessions, req)
	if err != nil {
		return nil, err
	}
	// Query email is accepted but must match the session owner.
	if email := req.Query["email"]; email != "" && email != token.UserEmail {
		return nil, util.NewUnauthorized("token does not match user")
	}

	user, err := h.accounts.Get(ctx, token.UserEmail)
	if err != nil {
		return nil, err
	}
	return dispatch.OK(map[string]any{"data": userView(user)}), nil
}

func (h *UsersHandler) update(ctx context.Context, req *dispatch.Request) (*dispatch.Response, error) {
	token, err := requireSession(ctx, h.sessions, req)
	if err != nil {
		return nil, err
	}

	var body dto.UserUpdateRequest
	if err := dto.Bind(req.Payload, &body); err != nil {
		return nil, err
	}
	if body.Name == "" && body.StreetAddress == "" && body.Password == "" {
		return nil, util.NewValidationError("nothing to update", nil)
	}

	user, err := h.accounts.Update(ctx, token.UserEmail, body.Name, body.StreetAddress, body.Password)
	if err != nil {
		return nil, err
	}
	return dispatch.OK(map[string]any{"data": userView(user)}), nil
}

func (h *UsersHandler) delete(ctx context.Context, req *dispatch.Request) (*dispatch.Response, error) {
	token, err := requireSession(ctx, h.sessions, req)
	if err != nil {
		return nil, err
	}

	if err := h.accounts.Delete(ctx, token.UserEmail); err != nil {
		return nil, err
	}
	// The session token stays valid until expiry; the account it pointed
	// at is gone, so subsequent lookups fail.
	return dispatch.OK(nil), nil
}
