package events

import (
	"time"

	"github.com/spec-kit/food-order-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCompleted EventType = "order_completed"
	EventUserDeleted    EventType = "user_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserEmail string      `json:"user_email"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCompletedPayload carries the order record to archive.
type OrderCompletedPayload struct {
	Order *domain.Order `json:"order"`
}
