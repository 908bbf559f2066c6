package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/food-order-service/internal/events"
	"github.com/spec-kit/food-order-service/internal/repository"
)

// ArchivalWorker persists completed orders off the checkout critical path.
// Archival failures are logged, never surfaced to the checkout caller.
type ArchivalWorker struct {
	orders repository.OrderStore
	logger *zap.Logger
}

// NewArchivalWorker builds the worker.
func NewArchivalWorker(orders repository.OrderStore, logger *zap.Logger) *ArchivalWorker {
	return &ArchivalWorker{orders: orders, logger: logger}
}

// Register subscribes the worker to order-completed events.
func (w *ArchivalWorker) Register(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventOrderCompleted, w.handleOrderCompleted)
}

func (w *ArchivalWorker) handleOrderCompleted(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderCompletedPayload)
	if !ok || payload.Order == nil {
		w.logger.Warn("order completed event without order payload", zap.String("event_id", event.ID))
		return nil
	}

	// Detached from the request context: the response may already be
	// written by the time the write lands.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := w.orders.Save(ctx, payload.Order); err != nil {
			w.logger.Error("order archival failed",
				zap.String("order_id", payload.Order.ID),
				zap.Error(err))
			return
		}
		w.logger.Info("order archived", zap.String("order_id", payload.Order.ID))
	}()
	return nil
}
