package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is the payload describing a single user notification. It is what gets
// queued for delivery; transport mechanics live behind the Notifier interface.
type Event struct {
	UserId    uuid.UUID         `json:"user_id"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	EventType string            `json:"event_type"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Event types emitted by the goal funding flows.
const (
	EventWithdrawalRequest      = "WITHDRAWAL_REQUEST"
	EventWithdrawalStatusUpdate = "WITHDRAWAL_STATUS_UPDATE"
	EventGoalInvitation         = "GOAL_INVITATION"
)

// Notifier defines the interface for a component that delivers a notification
// to a user. Delivery is fire-and-forget from the caller's perspective.
type Notifier interface {
	// Notify enqueues a notification for asynchronous delivery.
	Notify(ctx context.Context, userId uuid.UUID, title, message, eventType string, metadata map[string]string) error
}
