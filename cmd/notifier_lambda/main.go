package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chitieu-app/chitieu/pkg/notify"
	dydbstore "github.com/chitieu-app/chitieu/pkg/storage/dynamodb"
	"github.com/chitieu-app/chitieu/pkg/websockets"
	"github.com/joho/godotenv"
)

var publisher websockets.Publisher

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")
	if connectionsTable == "" {
		log.Fatal("DYNAMODB_CONNECTIONS_TABLE_NAME environment variable not set")
	}

	apiEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT")
	if apiEndpoint == "" {
		log.Fatal("WEBSOCKET_API_ENDPOINT environment variable not set")
	}

	// The notifier lambda only touches the connections table.
	store := dydbstore.New(awsdynamodb.NewFromConfig(cfg), dydbstore.Tables{Connections: connectionsTable})

	publisher, err = websockets.NewPublisher(store, apiEndpoint)
	if err != nil {
		log.Fatalf("failed to create websocket publisher, %v", err)
	}
}

// HandleRequest processes queued notification events and pushes each one to
// the recipient's open websocket connections.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var event notify.Event
		if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
			log.Printf("ERROR: failed to unmarshal notification from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		if err := publisher.Publish(ctx, event); err != nil {
			log.Printf("ERROR: failed to deliver notification to user %s: %v", event.UserId, err)
			return err
		}

		log.Printf("Successfully delivered notification to user %s", event.UserId)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
