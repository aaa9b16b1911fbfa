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

// RequestWithdrawal opens a withdrawal request against the goal's funded
// amount. One approval slot is created per current member; the requester's own
// slot starts APPROVED, every other slot PENDING. The other members are
// notified about the new request.
func (s *Service) RequestWithdrawal(ctx context.Context, goalId, requesterId uuid.UUID, amount decimal.Decimal, description string) (*models.WithdrawalRequest, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	goal, err := s.Goals.GetGoal(ctx, goalId)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	requester, ok := goal.Member(requesterId)
	if !ok {
		return nil, storage.ErrMemberNotFound
	}

	if goal.CurrentAmount.LessThan(amount) {
		return nil, storage.ErrInsufficientFunds
	}

	now := time.Now()
	approvals := make([]models.Approval, len(goal.Members))
	for i, m := range goal.Members {
		status := models.PENDING
		if m.UserId == requesterId {
			status = models.APPROVED
		}
		approvals[i] = models.Approval{
			UserId:    m.UserId,
			UserName:  m.UserName,
			Status:    status,
			UpdatedAt: now,
		}
	}

	req := &models.WithdrawalRequest{
		Id:          uuid.New(),
		GoalId:      goalId,
		RequesterId: requesterId,
		Amount:      amount,
		Description: description,
		Status:      models.PENDING,
		CreatedAt:   now,
		Approvals:   approvals,
		Version:     1,
	}

	if err := s.Withdrawals.SaveWithdrawal(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to save withdrawal request: %w", err)
	}

	metadata := map[string]string{"goalId": goalId.String(), "requestId": req.Id.String()}
	for _, m := range goal.Members {
		if m.UserId == requesterId {
			continue
		}
		s.sendNotification(ctx, m.UserId,
			"New withdrawal request",
			fmt.Sprintf("%s wants to withdraw %s from %s", requester.UserName, amount.String(), goal.Title),
			notify.EventWithdrawalRequest, metadata)
	}

	return req, nil
}

// RecordApproval applies one member's decision to a pending request, derives
// the new aggregate status and, on the transition to APPROVED, atomically
// deducts the amount from the goal exactly once. The requester is notified
// whenever the aggregate status changes. Terminal requests reject further
// decisions.
func (s *Service) RecordApproval(ctx context.Context, requestId, userId uuid.UUID, decision models.ApprovalStatus) (*models.WithdrawalRequest, error) {
	if decision != models.APPROVED && decision != models.REJECTED {
		return nil, ErrInvalidDecision
	}

	req, err := s.Withdrawals.GetWithdrawal(ctx, requestId)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal request: %w", err)
	}

	if req.Finalized() {
		return nil, ErrRequestFinalized
	}

	previousStatus := req.Status
	updated, ok := req.WithApproval(userId, decision, time.Now())
	if !ok {
		return nil, storage.ErrMemberNotFound
	}

	// The transition to APPROVED deducts the goal and persists the request in
	// one transactional write. Splitting the two would leave a window where
	// the goal lost funds while the request stayed pending, and a retry after
	// a lost version race would deduct a second time.
	if updated.Status == models.APPROVED {
		if _, err := s.Withdrawals.ApproveWithdrawal(ctx, &updated); err != nil {
			return nil, fmt.Errorf("failed to approve withdrawal: %w", err)
		}
	} else if err := s.Withdrawals.SaveWithdrawal(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to save withdrawal request: %w", err)
	}

	if updated.Status != previousStatus {
		goalTitle := updated.GoalId.String()
		if goal, err := s.Goals.GetGoal(ctx, updated.GoalId); err == nil {
			goalTitle = goal.Title
		}
		s.sendNotification(ctx, updated.RequesterId,
			"Withdrawal request update",
			fmt.Sprintf("Your request to withdraw %s from %s is now %s", updated.Amount.String(), goalTitle, updated.Status),
			notify.EventWithdrawalStatusUpdate,
			map[string]string{"goalId": updated.GoalId.String(), "requestId": updated.Id.String()})
	}

	return &updated, nil
}

// WithdrawalsForGoal lists the goal's withdrawal request history.
func (s *Service) WithdrawalsForGoal(ctx context.Context, goalId uuid.UUID) ([]models.WithdrawalRequest, error) {
	return s.Withdrawals.ListWithdrawalsByGoal(ctx, goalId)
}

// sendNotification delivers best-effort: a failed notification never rolls
// back the state transition that triggered it.
func (s *Service) sendNotification(ctx context.Context, userId uuid.UUID, title, message, eventType string, metadata map[string]string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, userId, title, message, eventType, metadata); err != nil {
		slog.Error("failed to enqueue notification", "user_id", userId, "event_type", eventType, "error", err)
	}
}
