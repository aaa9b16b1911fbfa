package dynamodb

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chitieu-app/chitieu/pkg/storage"
)

// Store implements the Storage interface using AWS DynamoDB, one table per
// aggregate. Money fields travel as exact decimal strings; every
// read-modify-write on goals and withdrawal requests is guarded by an
// optimistic version attribute.
type Store struct {
	Client                DynamoDBAPI
	AccountsTableName     string
	TransactionsTableName string
	DebtsTableName        string
	GoalsTableName        string
	WithdrawalsTableName  string
	InvitationsTableName  string
	ConnectionsTableName  string
}

// Tables names the DynamoDB tables backing the store.
type Tables struct {
	Accounts     string
	Transactions string
	Debts        string
	Goals        string
	Withdrawals  string
	Invitations  string
	Connections  string
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{
		Client:                client,
		AccountsTableName:     tables.Accounts,
		TransactionsTableName: tables.Transactions,
		DebtsTableName:        tables.Debts,
		GoalsTableName:        tables.Goals,
		WithdrawalsTableName:  tables.Withdrawals,
		InvitationsTableName:  tables.Invitations,
		ConnectionsTableName:  tables.Connections,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// isConditionalCheckFailed reports whether err is a failed ConditionExpression,
// i.e. a lost optimistic-locking race or a duplicate create.
func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
