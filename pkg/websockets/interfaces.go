package websockets

import (
	"context"

	"github.com/chitieu-app/chitieu/pkg/notify"
)

// Publisher defines the interface for delivering notification events to a
// user's connected WebSocket clients.
type Publisher interface {
	Publish(ctx context.Context, event notify.Event) error
}
