package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/food-order-service/internal/catalog"
	"github.com/spec-kit/food-order-service/internal/domain"
	"github.com/spec-kit/food-order-service/internal/events"
	"github.com/spec-kit/food-order-service/internal/pricing"
	"github.com/spec-kit/food-order-service/internal/provider"
	"github.com/spec-kit/food-order-service/internal/repository"
	"github.com/spec-kit/food-order-service/pkg/util"
)

// Charger is the outbound payment collaborator.
type Charger interface {
	Charge(ctx context.Context, email string, amountMinorUnits int64, idempotencyKey string) (*provider.Result, error)
}

// ReceiptSender is the outbound email collaborator.
type ReceiptSender interface {
	SendReceipt(ctx context.Context, toEmail string, lines []provider.ReceiptLine, total int64) (*provider.Result, error)
}

// CheckoutDependencies bundles collaborators for the checkout flow.
type CheckoutDependencies struct {
	Carts      repository.CartStore
	Menu       catalog.Catalog
	Payments   Charger
	Mailer     ReceiptSender
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// CheckoutService prices the cart, charges the card once, and mails the
// receipt. No retries and no compensation: a failed receipt mail never
// rolls back a successful charge.
type CheckoutService struct {
	carts      repository.CartStore
	menu       catalog.Catalog
	payments   Charger
	mailer     ReceiptSender
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// CheckoutResult reports the order and both provider outcomes.
type CheckoutResult struct {
	Order   *domain.Order    `json:"order"`
	Payment *provider.Result `json:"-"`
	Email   *provider.Result `json:"-"`
}

// NewCheckoutService builds the service.
func NewCheckoutService(deps CheckoutDependencies) *CheckoutService {
	return &CheckoutService{
		carts:      deps.Carts,
		menu:       deps.Menu,
		payments:   deps.Payments,
		mailer:     deps.Mailer,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Checkout runs the full flow for a user's current cart. The order id is
// passed to the payment provider as the idempotency key.
func (s *CheckoutService) Checkout(ctx context.Context, userEmail string) (*CheckoutResult, error) {
	items, err := s.carts.Get(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	lines, err := pricing.PriceCart(items, s.menu)
	if err != nil {
		var lookupErr *pricing.LookupError
		if errors.As(err, &lookupErr) {
			return nil, util.NewLookupError(lookupErr.Error(), map[string]any{
				"productId": lookupErr.ProductID,
				"size":      string(lookupErr.Size),
			})
		}
		return nil, err
	}

	total, err := pricing.TotalAmount(lines)
	if err != nil {
		if errors.Is(err, pricing.ErrEmptyCart) {
			return nil, util.NewEmptyCart()
		}
		return nil, err
	}

	orderID := uuid.NewString()

	payment, err := s.payments.Charge(ctx, userEmail, total, orderID)
	if err != nil {
		return nil, util.NewProviderError("payment", 0, map[string]any{"message": err.Error()})
	}
	if !payment.OK() {
		return nil, util.NewProviderError("payment", payment.Status, payment.Body)
	}

	email := s.sendReceipt(ctx, userEmail, lines, total)

	order := &domain.Order{
		ID:            orderID,
		UserEmail:     userEmail,
		Lines:         lines,
		Total:         total,
		PaymentStatus: payment.Status,
		CreatedAt:     time.Now(),
	}
	if email != nil {
		order.EmailStatus = email.Status
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderCompleted,
			UserEmail: userEmail,
			Timestamp: time.Now(),
			Payload:   events.OrderCompletedPayload{Order: order},
		})
	}

	if err := s.carts.Delete(ctx, userEmail); err != nil {
		s.logger.Warn("cart cleanup failed", zap.String("user", userEmail), zap.Error(err))
	}

	return &CheckoutResult{Order: order, Payment: payment, Email: email}, nil
}

func (s *CheckoutService) sendReceipt(ctx context.Context, userEmail string, lines []domain.PricedLineItem, total int64) *provider.Result {
	receipt := make([]provider.ReceiptLine, 0, len(lines))
	for _, line := range lines {
		receipt = append(receipt, provider.ReceiptLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Total:    line.LineTotal,
		})
	}

	result, err := s.mailer.SendReceipt(ctx, userEmail, receipt, total)
	if err != nil {
		s.logger.Warn("receipt mail failed after successful charge",
			zap.String("user", userEmail), zap.Error(err))
		return nil
	}
	if !result.OK() {
		s.logger.Warn("receipt mail rejected by provider",
			zap.String("user", userEmail), zap.Int("status", result.Status))
	}
	return result
}
