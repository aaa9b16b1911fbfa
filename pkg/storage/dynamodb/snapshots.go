package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/google/uuid"
)

const ownerIndex = "owner_id-index"

// ListAccountsByOwner retrieves all accounts owned by the user via the owner GSI.
func (s *Store) ListAccountsByOwner(ctx context.Context, ownerId uuid.UUID) ([]models.Account, error) {
	items, err := s.queryByOwner(ctx, s.AccountsTableName, ownerId)
	if err != nil {
		return nil, err
	}

	var accounts []models.Account
	if err := attributevalue.UnmarshalListOfMaps(items, &accounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts: %w", err)
	}
	return accounts, nil
}

// ListTransactionsByOwner retrieves all transactions owned by the user via the owner GSI.
func (s *Store) ListTransactionsByOwner(ctx context.Context, ownerId uuid.UUID) ([]models.Transaction, error) {
	items, err := s.queryByOwner(ctx, s.TransactionsTableName, ownerId)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}
	return transactions, nil
}

// ListDebtsByOwner retrieves all debts owned by the user via the owner GSI.
func (s *Store) ListDebtsByOwner(ctx context.Context, ownerId uuid.UUID) ([]models.Debt, error) {
	items, err := s.queryByOwner(ctx, s.DebtsTableName, ownerId)
	if err != nil {
		return nil, err
	}

	var debts []models.Debt
	if err := attributevalue.UnmarshalListOfMaps(items, &debts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal debts: %w", err)
	}
	return debts, nil
}

func (s *Store) queryByOwner(ctx context.Context, table string, ownerId uuid.UUID) ([]map[string]types.AttributeValue, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(ownerIndex),
		KeyConditionExpression: aws.String("owner_id = :owner_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id": &types.AttributeValueMemberS{Value: ownerId.String()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	return result.Items, nil
}
