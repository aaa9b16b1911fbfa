package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/chitieu-app/chitieu/pkg/storage"
	"github.com/chitieu-app/chitieu/pkg/storage/dynamodb/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func approvedRequest(goalId uuid.UUID, amount string) *models.WithdrawalRequest {
	return &models.WithdrawalRequest{
		Id:          uuid.New(),
		GoalId:      goalId,
		RequesterId: uuid.New(),
		Amount:      decimal.RequireFromString(amount),
		Status:      models.APPROVED,
		Version:     2,
	}
}

func TestApproveWithdrawal(t *testing.T) {
	memberId := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, GoalsTableName: "goals", WithdrawalsTableName: "withdrawals"}
		goal := testGoal(memberId)
		req := approvedRequest(goal.Id, "250")

		goalAV, _ := attributevalue.MarshalMap(goal)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: goalAV}, nil)

		// Both writes travel in one transaction, each guarded by its own
		// version condition.
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 2 {
				return false
			}
			goalPut, reqPut := input.TransactItems[0].Put, input.TransactItems[1].Put
			if goalPut == nil || reqPut == nil {
				return false
			}
			goalVersion, ok := goalPut.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN)
			if !ok || *goalPut.TableName != "goals" || goalVersion.Value != "2" {
				return false
			}
			reqVersion, ok := reqPut.ExpressionAttributeValues[":prev"].(*types.AttributeValueMemberN)
			return ok && *reqPut.TableName == "withdrawals" && reqVersion.Value == "1"
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		deducted, err := store.ApproveWithdrawal(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, deducted.CurrentAmount.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, int64(3), deducted.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, GoalsTableName: "goals", WithdrawalsTableName: "withdrawals"}
		goal := testGoal(memberId)
		req := approvedRequest(goal.Id, "400.01")

		goalAV, _ := attributevalue.MarshalMap(goal)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: goalAV}, nil)

		_, err := store.ApproveWithdrawal(context.Background(), req)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Lost Race Applies Nothing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, GoalsTableName: "goals", WithdrawalsTableName: "withdrawals"}
		goal := testGoal(memberId)
		req := approvedRequest(goal.Id, "250")

		goalAV, _ := attributevalue.MarshalMap(goal)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: goalAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		})

		_, err := store.ApproveWithdrawal(context.Background(), req)

		assert.ErrorIs(t, err, storage.ErrVersionConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, GoalsTableName: "goals", WithdrawalsTableName: "withdrawals"}
		goal := testGoal(memberId)
		req := approvedRequest(goal.Id, "250")

		goalAV, _ := attributevalue.MarshalMap(goal)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: goalAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed"))

		_, err := store.ApproveWithdrawal(context.Background(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute withdrawal approval transaction")
		mockClient.AssertExpectations(t)
	})
}
