package storage

import (
	"context"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/google/uuid"
)

// AccountReader defines the interface for reading a user's accounts.
type AccountReader interface {
	// ListAccountsByOwner retrieves all accounts owned by the given user.
	ListAccountsByOwner(ctx context.Context, ownerId uuid.UUID) ([]models.Account, error)
}

// TransactionReader defines the interface for reading a user's transaction history.
type TransactionReader interface {
	// ListTransactionsByOwner retrieves all transactions owned by the given user.
	ListTransactionsByOwner(ctx context.Context, ownerId uuid.UUID) ([]models.Transaction, error)
}

// DebtReader defines the interface for reading a user's debts.
type DebtReader interface {
	// ListDebtsByOwner retrieves all debts owned by the given user.
	ListDebtsByOwner(ctx context.Context, ownerId uuid.UUID) ([]models.Debt, error)
}

// SnapshotReader combines the three read ports the financial-health path
// consumes as a frozen snapshot.
type SnapshotReader interface {
	AccountReader
	TransactionReader
	DebtReader
}
