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
	"github.com/shopspring/decimal"
)

// GetGoal retrieves a goal with its members from DynamoDB by its ID.
func (s *Store) GetGoal(ctx context.Context, goalId uuid.UUID) (*models.Goal, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": goalId.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal goal ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.GoalsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get goal from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrGoalNotFound
	}

	var goal models.Goal
	if err := attributevalue.UnmarshalMap(result.Item, &goal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal goal: %w", err)
	}

	return &goal, nil
}

// CreateGoal persists a new goal. Creating the same ID twice fails.
func (s *Store) CreateGoal(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	item, err := attributevalue.MarshalMap(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal goal: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.GoalsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, fmt.Errorf("goal %s already exists", goal.Id)
		}
		return nil, fmt.Errorf("failed to put goal: %w", err)
	}

	return goal, nil
}

// ListGoalsByMember retrieves all goals the given user is a member of.
// Membership lives in the members list inside each goal item, so there is no
// attribute a GSI could key on; this falls back to a full-table Scan filtered
// client-side. Goal counts stay small enough that the scan is acceptable.
func (s *Store) ListGoalsByMember(ctx context.Context, userId uuid.UUID) ([]models.Goal, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.GoalsTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan goals: %w", err)
	}

	var all []models.Goal
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &all); err != nil {
		return nil, fmt.Errorf("failed to unmarshal goals: %w", err)
	}

	var goals []models.Goal
	for _, g := range all {
		if _, ok := g.Member(userId); ok {
			goals = append(goals, g)
		}
	}
	return goals, nil
}

// AddMember appends a member to the goal, guarded by the goal's version.
// Adding a user who is already a member fails with ErrMemberExists, so a
// retried accept cannot create a second slot for the same user.
func (s *Store) AddMember(ctx context.Context, goalId uuid.UUID, member models.GoalMember) error {
	goal, err := s.GetGoal(ctx, goalId)
	if err != nil {
		return err
	}

	updated, ok := goal.WithMember(member)
	if !ok {
		return storage.ErrMemberExists
	}
	return s.putGoalVersioned(ctx, &updated, goal.Version)
}

// UpdateContribution increases the member's contributed amount and the goal's
// current amount by the same value. The whole goal item is replaced under a
// version condition, so the two fields can never diverge.
func (s *Store) UpdateContribution(ctx context.Context, goalId, userId uuid.UUID, amount decimal.Decimal) (*models.Goal, error) {
	goal, err := s.GetGoal(ctx, goalId)
	if err != nil {
		return nil, err
	}

	updated, ok := goal.WithContribution(userId, amount)
	if !ok {
		return nil, storage.ErrMemberNotFound
	}

	if err := s.putGoalVersioned(ctx, &updated, goal.Version); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeductAmount decreases the goal's current amount, failing when the deduction
// exceeds the funded amount.
func (s *Store) DeductAmount(ctx context.Context, goalId uuid.UUID, amount decimal.Decimal) (*models.Goal, error) {
	goal, err := s.GetGoal(ctx, goalId)
	if err != nil {
		return nil, err
	}

	if goal.CurrentAmount.LessThan(amount) {
		return nil, storage.ErrInsufficientFunds
	}

	updated := goal.WithDeduction(amount)
	if err := s.putGoalVersioned(ctx, &updated, goal.Version); err != nil {
		return nil, err
	}
	return &updated, nil
}

// putGoalVersioned replaces the goal item if the stored version still matches
// the one the update was computed from.
func (s *Store) putGoalVersioned(ctx context.Context, goal *models.Goal, expectedVersion int64) error {
	item, err := attributevalue.MarshalMap(goal)
	if err != nil {
		return fmt.Errorf("failed to marshal goal: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.GoalsTableName),
		Item:                item,
		ConditionExpression: aws.String("version = :version"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return storage.ErrVersionConflict
		}
		return fmt.Errorf("failed to put goal: %w", err)
	}
	return nil
}
