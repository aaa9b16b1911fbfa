package storage

import (
	"context"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/google/uuid"
)

// WithdrawalStore defines the interface for persisting withdrawal requests.
type WithdrawalStore interface {
	// SaveWithdrawal persists a new request, or replaces an existing one when
	// its version matches the stored version plus one.
	SaveWithdrawal(ctx context.Context, req *models.WithdrawalRequest) error

	// ApproveWithdrawal persists the approved request and deducts its amount
	// from the goal in a single atomic write. Either both changes commit or
	// neither does; a lost version race on either item returns
	// ErrVersionConflict with nothing applied, so the caller can retry from a
	// fresh read without double-deducting.
	ApproveWithdrawal(ctx context.Context, req *models.WithdrawalRequest) (*models.Goal, error)

	// GetWithdrawal retrieves a withdrawal request by ID.
	GetWithdrawal(ctx context.Context, requestId uuid.UUID) (*models.WithdrawalRequest, error)

	// ListWithdrawalsByGoal retrieves all withdrawal requests for a goal.
	ListWithdrawalsByGoal(ctx context.Context, goalId uuid.UUID) ([]models.WithdrawalRequest, error)
}
