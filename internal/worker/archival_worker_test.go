package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/food-order-service/internal/domain"
	"github.com/spec-kit/food-order-service/internal/events"
)

type captureOrderStore struct {
	saved chan *domain.Order
}

func (s *captureOrderStore) Save(_ context.Context, order *domain.Order) error {
	s.saved <- order
	return nil
}

func TestArchivalWorker_PersistsCompletedOrders(t *testing.T) {
	store := &captureOrderStore{saved: make(chan *domain.Order, 1)}
	dispatcher := events.NewInMemoryDispatcher()
	NewArchivalWorker(store, zap.NewNop()).Register(dispatcher)

	order := &domain.Order{ID: "order-1", UserEmail: "ada@example.com", Total: 1000}
	err := dispatcher.Publish(context.Background(), events.Event{
		ID:      "e1",
		Type:    events.EventOrderCompleted,
		Payload: events.OrderCompletedPayload{Order: order},
	})
	require.NoError(t, err)

	select {
	case saved := <-store.saved:
		assert.Equal(t, "order-1", saved.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("order was not archived")
	}
}

func TestArchivalWorker_IgnoresMalformedPayload(t *testing.T) {
	store := &captureOrderStore{saved: make(chan *domain.Order, 1)}
	dispatcher := events.NewInMemoryDispatcher()
	NewArchivalWorker(store, zap.NewNop()).Register(dispatcher)

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:      "e2",
		Type:    events.EventOrderCompleted,
		Payload: "not an order",
	})
	require.NoError(t, err)

	select {
	case <-store.saved:
		t.Fatal("malformed payload must not be archived")
	case <-time.After(100 * time.Millisecond):
	}
}
