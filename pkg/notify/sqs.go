package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
)

// SQSAPI is the subset of the SQS client the notifier uses.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSNotifier implements the Notifier interface using AWS SQS.
type SQSNotifier struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSNotifier creates a new SQSNotifier.
func NewSQSNotifier(client SQSAPI, queueURL string) *SQSNotifier {
	return &SQSNotifier{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Notifier = (*SQSNotifier)(nil)

// Notify sends the notification event to an SQS queue for later delivery.
func (n *SQSNotifier) Notify(ctx context.Context, userId uuid.UUID, title, message, eventType string, metadata map[string]string) error {
	event := Event{
		UserId:    userId,
		Title:     title,
		Message:   message,
		EventType: eventType,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification for SQS: %w", err)
	}

	_, err = n.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.QueueURL),
		MessageBody: aws.String(string(body)),
	})

	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
