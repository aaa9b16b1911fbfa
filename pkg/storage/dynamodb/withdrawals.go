package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/chitieu-app/chitieu/pkg/storage"
	"github.com/google/uuid"
)

const withdrawalsByGoalIndex = "goal_id-index"

// SaveWithdrawal persists a withdrawal request. A version-1 request must not
// exist yet; any later version must replace exactly the previous one, so
// concurrent approvals on the same request cannot overwrite each other.
func (s *Store) SaveWithdrawal(ctx context.Context, req *models.WithdrawalRequest) error {
	item, err := attributevalue.MarshalMap(req)
	if err != nil {
		return fmt.Errorf("failed to marshal withdrawal request: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.WithdrawalsTableName),
		Item:      item,
	}
	if req.Version <= 1 {
		input.ConditionExpression = aws.String("attribute_not_exists(id)")
	} else {
		input.ConditionExpression = aws.String("version = :prev")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":prev": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", req.Version-1)},
		}
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		if isConditionalCheckFailed(err) {
			return storage.ErrVersionConflict
		}
		return fmt.Errorf("failed to put withdrawal request: %w", err)
	}
	return nil
}

// GetWithdrawal retrieves a withdrawal request from DynamoDB by its ID.
func (s *Store) GetWithdrawal(ctx context.Context, requestId uuid.UUID) (*models.WithdrawalRequest, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": requestId.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.WithdrawalsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal request from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrRequestNotFound
	}

	var req models.WithdrawalRequest
	if err := attributevalue.UnmarshalMap(result.Item, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawal request: %w", err)
	}
	return &req, nil
}

// ListWithdrawalsByGoal retrieves all withdrawal requests for a goal via the
// goal_id GSI.
func (s *Store) ListWithdrawalsByGoal(ctx context.Context, goalId uuid.UUID) ([]models.WithdrawalRequest, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.WithdrawalsTableName),
		IndexName:              aws.String(withdrawalsByGoalIndex),
		KeyConditionExpression: aws.String("goal_id = :goal_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":goal_id": &types.AttributeValueMemberS{Value: goalId.String()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawal requests: %w", err)
	}

	var reqs []models.WithdrawalRequest
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &reqs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawal requests: %w", err)
	}
	return reqs, nil
}
