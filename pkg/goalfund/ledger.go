package goalfund

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/chitieu-app/chitieu/pkg/notify"
	"github.com/chitieu-app/chitieu/pkg/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service owns the goal funding logic: contributions, the withdrawal approval
// workflow, settlements and invitations. All mutations go through the storage
// ports, whose conditional writes serialize concurrent updates per goal.
type Service struct {
	Goals       storage.GoalStore
	Withdrawals storage.WithdrawalStore
	Invitations storage.InvitationStore
	Notifier    notify.Notifier
}

// NewService creates a new Service.
func NewService(goals storage.GoalStore, withdrawals storage.WithdrawalStore, invitations storage.InvitationStore, notifier notify.Notifier) *Service {
	return &Service{
		Goals:       goals,
		Withdrawals: withdrawals,
		Invitations: invitations,
		Notifier:    notifier,
	}
}

// CreateGoal registers a new shared goal with the creator as its OWNER member.
func (s *Service) CreateGoal(ctx context.Context, title string, targetAmount decimal.Decimal, locked bool, ownerId uuid.UUID, ownerName string) (*models.Goal, error) {
	if !targetAmount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	goal := &models.Goal{
		Id:            uuid.New(),
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Locked:        locked,
		Members: []models.GoalMember{{
			UserId:            ownerId,
			UserName:          ownerName,
			ContributedAmount: decimal.Zero,
			TargetAmount:      decimal.Zero,
			Role:              models.RoleOwner,
		}},
		Version:   1,
		CreatedAt: time.Now(),
	}

	return s.Goals.CreateGoal(ctx, goal)
}

// GoalsForUser lists the goals the user is a member of.
func (s *Service) GoalsForUser(ctx context.Context, userId uuid.UUID) ([]models.Goal, error) {
	return s.Goals.ListGoalsByMember(ctx, userId)
}

// Contribute adds amount to the member's contribution and to the goal's funded
// amount in one atomic update. The amount must be strictly positive.
func (s *Service) Contribute(ctx context.Context, goalId, userId uuid.UUID, amount decimal.Decimal) (*models.Goal, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	goal, err := s.Goals.UpdateContribution(ctx, goalId, userId, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to record contribution: %w", err)
	}

	slog.Info("contribution recorded", "goal_id", goalId, "user_id", userId, "amount", amount)
	return goal, nil
}
