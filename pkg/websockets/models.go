package websockets

import "github.com/chitieu-app/chitieu/pkg/notify"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeNotification carries a user notification event.
	MessageTypeNotification MessageType = "notification"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType  `json:"type"`
	Payload notify.Event `json:"payload"`
}
