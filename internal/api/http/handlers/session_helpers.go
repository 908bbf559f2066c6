package handlers

import (
	"context"

	"github.com/spec-kit/food-order-service/internal/dispatch"
	"github.com/spec-kit/food-order-service/internal/domain"
	"github.com/spec-kit/food-order-service/internal/service"
)

// tokenHeader carries the session token id, as in the original API.
const tokenHeader = "Token"

// requireSession resolves the request's token header to a live session.
func requireSession(ctx context.Context, sessions *service.SessionService, req *dispatch.Request) (*domain.Token, error) {
	return sessions.Verify(ctx, req.Header(tokenHeader))
}

// userView strips sensitive fields from an account for API output.
func userView(user *domain.User) map[string]any {
	return map[string]any{
		"email":         user.Email,
		"name":          user.Name,
		"streetAddress": user.StreetAddress,
	}
}
