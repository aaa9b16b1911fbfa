package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/chitieu-app/chitieu/pkg/storage"
)

// ApproveWithdrawal atomically deducts the request's amount from the goal and
// persists the approved request. Both items are written in one
// TransactWriteItems call, each guarded by its own version condition, so the
// goal can never lose funds while the request stays pending. When either
// condition fails the whole transaction is cancelled and nothing is applied.
func (s *Store) ApproveWithdrawal(ctx context.Context, req *models.WithdrawalRequest) (*models.Goal, error) {
	goal, err := s.GetGoal(ctx, req.GoalId)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal for withdrawal approval: %w", err)
	}

	if goal.CurrentAmount.LessThan(req.Amount) {
		return nil, storage.ErrInsufficientFunds
	}

	deducted := goal.WithDeduction(req.Amount)

	goalItem, err := attributevalue.MarshalMap(&deducted)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal goal: %w", err)
	}
	reqItem, err := attributevalue.MarshalMap(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal withdrawal request: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.GoalsTableName),
					Item:                goalItem,
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", goal.Version)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.WithdrawalsTableName),
					Item:                reqItem,
					ConditionExpression: aws.String("version = :prev"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":prev": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", req.Version-1)},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return nil, storage.ErrVersionConflict
				}
			}
		}
		return nil, fmt.Errorf("failed to execute withdrawal approval transaction: %w", err)
	}

	return &deducted, nil
}
