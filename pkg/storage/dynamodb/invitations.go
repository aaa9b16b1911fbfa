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

const (
	invitationsByGoalIndex = "goal_id-index"
	invitationsByUserIndex = "invited_user_id-index"
)

// SaveInvitation persists a new or updated invitation.
func (s *Store) SaveInvitation(ctx context.Context, inv *models.GoalInvitation) error {
	item, err := attributevalue.MarshalMap(inv)
	if err != nil {
		return fmt.Errorf("failed to marshal invitation: %w", err)
	}

	if _, err := s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.InvitationsTableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to put invitation: %w", err)
	}
	return nil
}

// GetInvitation retrieves an invitation from DynamoDB by its ID.
func (s *Store) GetInvitation(ctx context.Context, invitationId uuid.UUID) (*models.GoalInvitation, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": invitationId.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invitation ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.InvitationsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrInvitationNotFound
	}

	var inv models.GoalInvitation
	if err := attributevalue.UnmarshalMap(result.Item, &inv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invitation: %w", err)
	}
	return &inv, nil
}

// InvitationExists reports whether the user already has an invitation to the goal.
func (s *Store) InvitationExists(ctx context.Context, goalId, userId uuid.UUID) (bool, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.InvitationsTableName),
		IndexName:              aws.String(invitationsByGoalIndex),
		KeyConditionExpression: aws.String("goal_id = :goal_id"),
		FilterExpression:       aws.String("invited_user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":goal_id": &types.AttributeValueMemberS{Value: goalId.String()},
			":user_id": &types.AttributeValueMemberS{Value: userId.String()},
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to query invitations: %w", err)
	}
	return len(result.Items) > 0, nil
}

// ListPendingInvitations retrieves the user's unanswered invitations via the
// invited-user GSI.
func (s *Store) ListPendingInvitations(ctx context.Context, userId uuid.UUID) ([]models.GoalInvitation, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.InvitationsTableName),
		IndexName:              aws.String(invitationsByUserIndex),
		KeyConditionExpression: aws.String("invited_user_id = :user_id"),
		FilterExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userId.String()},
			":pending": &types.AttributeValueMemberS{Value: string(models.InvitationPending)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query pending invitations: %w", err)
	}

	var invs []models.GoalInvitation
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &invs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invitations: %w", err)
	}
	return invs, nil
}
