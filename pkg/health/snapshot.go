package health

import (
	"context"
	"fmt"
	"time"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/chitieu-app/chitieu/pkg/storage"
	"github.com/google/uuid"
)

// Snapshot is a frozen, read-only view of one user's financial data. Every
// metric is a pure function of a snapshot, so concurrent calculations never
// share mutable state.
type Snapshot struct {
	OwnerId      uuid.UUID
	Accounts     []models.Account
	Transactions []models.Transaction
	Debts        []models.Debt
	Now          time.Time
}

// Loader assembles snapshots from the read ports.
type Loader struct {
	Store storage.SnapshotReader
}

// NewLoader creates a new Loader.
func NewLoader(store storage.SnapshotReader) *Loader {
	return &Loader{Store: store}
}

// Load reads the user's accounts, transactions and debts and freezes them into
// a snapshot anchored at the current time.
func (l *Loader) Load(ctx context.Context, ownerId uuid.UUID) (*Snapshot, error) {
	accounts, err := l.Store.ListAccountsByOwner(ctx, ownerId)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	transactions, err := l.Store.ListTransactionsByOwner(ctx, ownerId)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	debts, err := l.Store.ListDebtsByOwner(ctx, ownerId)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	return &Snapshot{
		OwnerId:      ownerId,
		Accounts:     accounts,
		Transactions: transactions,
		Debts:        debts,
		Now:          time.Now(),
	}, nil
}

// transactionsSince returns the snapshot's transactions of the given type
// dated after the cutoff.
func (s *Snapshot) transactionsSince(cutoff time.Time, txType models.TransactionType) []models.Transaction {
	var out []models.Transaction
	for _, t := range s.Transactions {
		if t.Type == txType && t.Date.After(cutoff) {
			out = append(out, t)
		}
	}
	return out
}
