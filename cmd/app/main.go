package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chitieu-app/chitieu/pkg/goalfund"
	goalshandler "github.com/chitieu-app/chitieu/pkg/handlers/goals"
	healthhandler "github.com/chitieu-app/chitieu/pkg/handlers/health"
	wshandler "github.com/chitieu-app/chitieu/pkg/handlers/websockets"
	"github.com/chitieu-app/chitieu/pkg/middleware"
	"github.com/chitieu-app/chitieu/pkg/notify"
	dydbstore "github.com/chitieu-app/chitieu/pkg/storage/dynamodb"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := awsdynamodb.NewFromConfig(cfg)
	tables := dydbstore.Tables{
		Accounts:     os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME"),
		Transactions: os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME"),
		Debts:        os.Getenv("DYNAMODB_DEBTS_TABLE_NAME"),
		Goals:        os.Getenv("DYNAMODB_GOALS_TABLE_NAME"),
		Withdrawals:  os.Getenv("DYNAMODB_WITHDRAWALS_TABLE_NAME"),
		Invitations:  os.Getenv("DYNAMODB_INVITATIONS_TABLE_NAME"),
		Connections:  os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
	}
	for _, name := range []string{tables.Accounts, tables.Transactions, tables.Debts, tables.Goals, tables.Withdrawals, tables.Invitations, tables.Connections} {
		if name == "" {
			log.Fatal("One or more DynamoDB table name environment variables are not set")
		}
	}

	// SQS-backed notifier. Without a queue the app still serves requests, it
	// just doesn't deliver notifications.
	var notifier notify.Notifier = &notify.NoOpNotifier{}
	if sqsQueueURL := os.Getenv("SQS_NOTIFICATIONS_QUEUE_URL"); sqsQueueURL != "" {
		notifier = notify.NewSQSNotifier(sqs.NewFromConfig(cfg), sqsQueueURL)
	} else {
		log.Println("SQS_NOTIFICATIONS_QUEUE_URL not set, notifications disabled")
	}

	// Create our storage implementation
	store := dydbstore.New(dbClient, tables)

	// Create our handlers
	healthHandler := healthhandler.NewHealthHandler(store)
	goalsHandler := goalshandler.NewGoalsHandler(goalfund.NewService(store, store, store, notifier))
	wsHandler := wshandler.NewHandler(store)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))

	router.Get("/users/{userId}/health", withUserId(healthHandler.GetFinancialHealth))
	router.Get("/users/{userId}/spending", withUserId(healthHandler.GetSpendingByCategory))

	router.Route("/goals", func(r chi.Router) {
		r.Post("/", goalsHandler.CreateGoal)
		r.Get("/", goalsHandler.ListGoals)
		r.Post("/{goalId}/contributions", goalsHandler.Contribute)
		r.Post("/{goalId}/withdrawals", goalsHandler.RequestWithdrawal)
		r.Get("/{goalId}/withdrawals", goalsHandler.ListWithdrawals)
		r.Get("/{goalId}/settlements", goalsHandler.Settlements)
		r.Post("/{goalId}/invitations", goalsHandler.Invite)
	})
	router.Post("/withdrawals/{requestId}/approvals", goalsHandler.Approve)
	router.Get("/invitations", goalsHandler.ListInvitations)
	router.Post("/invitations/{invitationId}/{answer}", goalsHandler.AnswerInvitation)

	// Local websocket endpoint. In AWS the websocket lambda serves this role.
	router.Handle("/ws", wsHandler)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// withUserId adapts handlers that take a parsed user ID path parameter.
func withUserId(next func(http.ResponseWriter, *http.Request, uuid.UUID)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userId, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			http.Error(w, "Invalid userId", http.StatusBadRequest)
			return
		}
		next(w, r, userId)
	}
}
