package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/chitieu-app/chitieu/pkg/notify"
	"github.com/chitieu-app/chitieu/pkg/storage"
)

// DefaultPublisher is the default implementation of the Publisher interface.
// It pushes each event to the recipient's registered connections and prunes
// connections that are gone.
type DefaultPublisher struct {
	store       storage.WebSocketManager
	apiGwClient *apigatewaymanagementapi.Client
}

// NewPublisher creates a new DefaultPublisher.
func NewPublisher(store storage.WebSocketManager, apiEndpoint string) (*DefaultPublisher, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	apiGwClient := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})

	return &DefaultPublisher{
		store:       store,
		apiGwClient: apiGwClient,
	}, nil
}

// Make sure we conform to the interface
var _ Publisher = (*DefaultPublisher)(nil)

// Publish sends the event to every connection registered for its recipient.
func (p *DefaultPublisher) Publish(ctx context.Context, event notify.Event) error {
	connectionIDs, err := p.store.ConnectionsForUser(ctx, event.UserId)
	if err != nil {
		return fmt.Errorf("failed to get connections for user: %w", err)
	}

	payload, err := json.Marshal(Message{Type: MessageTypeNotification, Payload: event})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	for _, connectionID := range connectionIDs {
		_, err := p.apiGwClient.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: aws.String(connectionID),
			Data:         payload,
		})

		if err != nil {
			var goneErr *apigwtypes.GoneException
			if errors.As(err, &goneErr) {
				slog.Info("stale connection found, deleting", "connectionId", connectionID)
				if err := p.store.RemoveConnection(ctx, connectionID); err != nil {
					slog.Error("failed to delete stale connection", "error", err)
				}
			} else {
				slog.Error("failed to post to connection", "connectionId", connectionID, "error", err)
			}
		}
	}

	return nil
}
