package websockets

import (
	"context"

	"github.com/chitieu-app/chitieu/pkg/notify"
)

// NoOpPublisher is a mock publisher that does nothing.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, event notify.Event) error {
	return nil
}
