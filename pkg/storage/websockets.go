package storage

import (
	"context"

	"github.com/google/uuid"
)

// WebSocketManager defines the interface for storing and retrieving WebSocket
// connection IDs per user. The notifier lambda uses it to fan events out.
type WebSocketManager interface {
	AddConnection(ctx context.Context, userId uuid.UUID, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
	ConnectionsForUser(ctx context.Context, userId uuid.UUID) ([]string, error)
}
