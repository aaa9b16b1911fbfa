package storage

import (
	"context"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStore defines the interface for managing shared goals and their members.
// The mutating operations are atomic: either the whole update commits or none
// of it does.
type GoalStore interface {
	// GetGoal retrieves a goal with its members by ID.
	GetGoal(ctx context.Context, goalId uuid.UUID) (*models.Goal, error)

	// CreateGoal persists a new goal with its initial member list.
	CreateGoal(ctx context.Context, goal *models.Goal) (*models.Goal, error)

	// ListGoalsByMember retrieves all goals the given user is a member of.
	ListGoalsByMember(ctx context.Context, userId uuid.UUID) ([]models.Goal, error)

	// AddMember appends a member to the goal.
	AddMember(ctx context.Context, goalId uuid.UUID, member models.GoalMember) error

	// UpdateContribution increases the member's contributed amount and the
	// goal's current amount by the same value in a single write.
	UpdateContribution(ctx context.Context, goalId, userId uuid.UUID, amount decimal.Decimal) (*models.Goal, error)

	// DeductAmount decreases the goal's current amount. It fails with
	// ErrInsufficientFunds when amount exceeds the current amount.
	DeductAmount(ctx context.Context, goalId uuid.UUID, amount decimal.Decimal) (*models.Goal, error)
}
