package dispatch

import (
	"context"
	"runtime/debug"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/food-order-service/internal/observability"
	"github.com/spec-kit/food-order-service/pkg/util"
)

// Dispatcher maps inbound requests to handlers by exact normalized-path
// match against a table fixed at construction. Unmatched paths fall through
// to a not-found handler; handler errors and panics are converted to
// structured error responses so a request can never crash the process.
type Dispatcher struct {
	routes   map[string]Handler
	notFound Handler
	logger   *zap.Logger
	metrics  *observability.Metrics
}

// New builds a dispatcher over a fixed routing table.
func New(routes map[string]Handler, logger *zap.Logger, metrics *observability.Metrics) *Dispatcher {
	table := make(map[string]Handler, len(routes))
	for path, handler := range routes {
		table[NormalizePath(path)] = handler
	}
	return &Dispatcher{
		routes:   table,
		notFound: notFoundHandler,
		logger:   logger,
		metrics:  metrics,
	}
}

// Mount registers the dispatcher as the catch-all handler on a Fiber app.
// Fiber owns the listeners and body buffering; routing semantics live here.
func (d *Dispatcher) Mount(app *fiber.App) {
	app.All("/*", d.handle)
}

func (d *Dispatcher) handle(c *fiber.Ctx) error {
	req := &Request{
		Path:    NormalizePath(c.Path()),
		Method:  strings.ToLower(c.Method()),
		Query:   c.Queries(),
		Headers: requestHeaders(c),
		Payload: ParsePayload(c.Body()),
	}

	handler, ok := d.routes[req.Path]
	if !ok {
		handler = d.notFound
	}

	resp, err := d.invoke(c.UserContext(), handler, req)
	if err != nil {
		domainErr := util.ToDomainError(err)
		d.metrics.RecordError(req.Path, req.Method, domainErr.Code)
		if domainErr.HTTPStatus >= 500 {
			d.logger.Error("request failed", zap.Error(domainErr))
		}
		resp = WithStatus(domainErr.HTTPStatus, errorPayload(domainErr))
	}

	status := resp.Status
	if status == 0 {
		status = fiber.StatusOK
	}
	payload := resp.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	d.metrics.RecordRequest(req.Path, req.Method, status)
	d.logRequest(req, status)

	return c.Status(status).JSON(payload)
}

// invoke runs the handler, converting a panic into a generic 500 error.
func (d *Dispatcher) invoke(ctx context.Context, handler Handler, req *Request) (resp *Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("handler panic recovered",
				zap.String("path", req.Path),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
			resp, err = nil, util.NewInternalError(nil)
		}
	}()

	resp, err = handler(ctx, req)
	if err == nil && resp == nil {
		resp = OK(nil)
	}
	return resp, err
}

func (d *Dispatcher) logRequest(req *Request, status int) {
	fields := []zap.Field{
		zap.String("method", strings.ToUpper(req.Method)),
		zap.String("path", "/"+req.Path),
		zap.Int("status", status),
	}
	if status >= 200 && status < 300 {
		d.logger.Info("request completed", fields...)
	} else {
		d.logger.Warn("request completed", fields...)
	}
}

func notFoundHandler(_ context.Context, req *Request) (*Response, error) {
	return nil, util.NewRouteNotFound("/" + req.Path)
}

func requestHeaders(c *fiber.Ctx) map[string]string {
	headers := map[string]string{}
	c.Request().Header.VisitAll(func(key, value []byte) {
		headers[string(key)] = string(value)
	})
	return headers
}

func errorPayload(err *util.DomainError) map[string]any {
	inner := map[string]any{
		"code":    err.Code,
		"message": err.Message,
	}
	if len(err.Details) > 0 {
		inner["details"] = err.Details
	}
	return map[string]any{"error": inner}
}
