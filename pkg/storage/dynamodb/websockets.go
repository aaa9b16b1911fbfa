package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const connectionsByUserIndex = "user_id-index"

// connectionItem is a single WebSocket connection registration.
type connectionItem struct {
	ConnectionID string `dynamodbav:"connection_id"`
	UserID       string `dynamodbav:"user_id"`
}

// AddConnection registers a WebSocket connection for a user.
func (s *Store) AddConnection(ctx context.Context, userId uuid.UUID, connectionID string) error {
	item, err := attributevalue.MarshalMap(connectionItem{ConnectionID: connectionID, UserID: userId.String()})
	if err != nil {
		return fmt.Errorf("failed to marshal connection: %w", err)
	}

	if _, err := s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to put connection: %w", err)
	}
	return nil
}

// RemoveConnection deletes a WebSocket connection registration.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"connection_id": connectionID})
	if err != nil {
		return fmt.Errorf("failed to marshal connection ID: %w", err)
	}

	if _, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Key:       key,
	}); err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}
	return nil
}

// ConnectionsForUser retrieves the user's active connection IDs via the user GSI.
func (s *Store) ConnectionsForUser(ctx context.Context, userId uuid.UUID) ([]string, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.ConnectionsTableName),
		IndexName:              aws.String(connectionsByUserIndex),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userId.String()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}

	var items []connectionItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connections: %w", err)
	}

	connectionIDs := make([]string, len(items))
	for i, item := range items {
		connectionIDs[i] = item.ConnectionID
	}
	return connectionIDs, nil
}
