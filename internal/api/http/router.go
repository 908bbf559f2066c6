package http

import (
	"go.uber.org/zap"

	"github.com/spec-kit/food-order-service/internal/api/http/handlers"
	"github.com/spec-kit/food-order-service/internal/dispatch"
	"github.com/spec-kit/food-order-service/internal/observability"
)

// RouteConfig bundles dependencies for route table construction.
type RouteConfig struct {
	Ping     *handlers.PingHandler
	Users    *handlers.UsersHandler
	Sessions *handlers.SessionHandler
	Menu     *handlers.MenuHandler
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
}

// NewDispatcher builds the request dispatcher over the fixed route table.
// Paths are matched by exact normalized path; anything else is a 404.
func NewDispatcher(cfg RouteConfig, logger *zap.Logger, metrics *observability.Metrics) *dispatch.Dispatcher {
	routes := map[string]dispatch.Handler{
		"ping":         cfg.Ping.Handle,
		"users":        cfg.Users.Handle,
		"login":        cfg.Sessions.Login,
		"logout":       cfg.Sessions.Logout,
		"menu":         cfg.Menu.Handle,
		"shoppingcart": cfg.Cart.Handle,
		"checkout":     cfg.Checkout.Handle,
	}
	return dispatch.New(routes, logger, metrics)
}
