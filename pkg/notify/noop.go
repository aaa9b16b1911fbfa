package notify

import (
	"context"

	"github.com/google/uuid"
)

// NoOpNotifier is a notifier that does nothing.
type NoOpNotifier struct{}

// Notify does nothing.
func (n *NoOpNotifier) Notify(ctx context.Context, userId uuid.UUID, title, message, eventType string, metadata map[string]string) error {
	return nil
}
