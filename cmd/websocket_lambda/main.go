package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	wshandler "github.com/chitieu-app/chitieu/pkg/handlers/websockets"
	dydbstore "github.com/chitieu-app/chitieu/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var handler *wshandler.Handler

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")
	if connectionsTable == "" {
		log.Fatal("DYNAMODB_CONNECTIONS_TABLE_NAME environment variable not set")
	}

	store := dydbstore.New(awsdynamodb.NewFromConfig(cfg), dydbstore.Tables{Connections: connectionsTable})
	handler = wshandler.NewHandler(store)
}

// HandleRequest dispatches websocket lifecycle events by route key.
func HandleRequest(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch request.RequestContext.RouteKey {
	case "$connect":
		return handler.HandleConnect(ctx, request)
	case "$disconnect":
		return handler.HandleDisconnect(ctx, request)
	default:
		return handler.HandleDefault(ctx, request)
	}
}

func main() {
	lambda.Start(HandleRequest)
}
