package goalfund

import (
	"context"
	"errors"
	"testing"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/chitieu-app/chitieu/pkg/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func threeMemberGoal(owner, second, third uuid.UUID) *models.Goal {
	return &models.Goal{
		Id:            uuid.New(),
		Title:         "House deposit",
		TargetAmount:  dec("3000"),
		CurrentAmount: dec("1000"),
		Members: []models.GoalMember{
			{UserId: owner, UserName: "owner", Role: models.RoleOwner, ContributedAmount: dec("600")},
			{UserId: second, UserName: "second", Role: models.RoleMember, ContributedAmount: dec("300")},
			{UserId: third, UserName: "third", Role: models.RoleMember, ContributedAmount: dec("100")},
		},
		Version: 5,
	}
}

func TestRequestWithdrawal(t *testing.T) {
	owner, second, third := uuid.New(), uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		service, goals, withdrawals, _, notifier := newTestService()
		goal := threeMemberGoal(owner, second, third)

		goals.On("GetGoal", mock.Anything, goal.Id).Once().Return(goal, nil)
		withdrawals.On("SaveWithdrawal", mock.Anything, mock.Anything).Once().Return(nil)
		notifier.On("Notify", mock.Anything, second, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once().Return(nil)
		notifier.On("Notify", mock.Anything, third, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once().Return(nil)

		req, err := service.RequestWithdrawal(context.Background(), goal.Id, owner, dec("400"), "tiles")

		assert.NoError(t, err)
		assert.Equal(t, models.PENDING, req.Status)
		assert.Len(t, req.Approvals, 3)
		for _, a := range req.Approvals {
			if a.UserId == owner {
				assert.Equal(t, models.APPROVED, a.Status)
			} else {
				assert.Equal(t, models.PENDING, a.Status)
			}
		}
		goals.AssertExpectations(t)
		withdrawals.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		service, goals, withdrawals, _, _ := newTestService()
		goal := threeMemberGoal(owner, second, third)

		goals.On("GetGoal", mock.Anything, goal.Id).Once().Return(goal, nil)

		_, err := service.RequestWithdrawal(context.Background(), goal.Id, owner, dec("1000.01"), "too much")

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		withdrawals.AssertNotCalled(t, "SaveWithdrawal", mock.Anything, mock.Anything)
	})

	t.Run("Requester Not A Member", func(t *testing.T) {
		service, goals, _, _, _ := newTestService()
		goal := threeMemberGoal(owner, second, third)

		goals.On("GetGoal", mock.Anything, goal.Id).Once().Return(goal, nil)

		_, err := service.RequestWithdrawal(context.Background(), goal.Id, uuid.New(), dec("100"), "")

		assert.ErrorIs(t, err, storage.ErrMemberNotFound)
	})

	t.Run("Non-Positive Amount", func(t *testing.T) {
		service, goals, _, _, _ := newTestService()

		_, err := service.RequestWithdrawal(context.Background(), uuid.New(), owner, dec("0"), "")

		assert.ErrorIs(t, err, ErrNonPositiveAmount)
		goals.AssertNotCalled(t, "GetGoal", mock.Anything, mock.Anything)
	})

	t.Run("Notification Failure Does Not Fail The Request", func(t *testing.T) {
		service, goals, withdrawals, _, notifier := newTestService()
		goal := threeMemberGoal(owner, second, third)

		goals.On("GetGoal", mock.Anything, goal.Id).Once().Return(goal, nil)
		withdrawals.On("SaveWithdrawal", mock.Anything, mock.Anything).Once().Return(nil)
		notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("queue unavailable"))

		_, err := service.RequestWithdrawal(context.Background(), goal.Id, owner, dec("400"), "tiles")

		assert.NoError(t, err)
	})
}

func pendingRequest(goalId, requester, second uuid.UUID, amount string) *models.WithdrawalRequest {
	return &models.WithdrawalRequest{
		Id:          uuid.New(),
		GoalId:      goalId,
		RequesterId: requester,
		Amount:      dec(amount),
		Status:      models.PENDING,
		Approvals: []models.Approval{
			{UserId: requester, UserName: "owner", Status: models.APPROVED},
			{UserId: second, UserName: "second", Status: models.PENDING},
		},
		Version: 1,
	}
}

func TestRecordApproval(t *testing.T) {
	owner, second := uuid.New(), uuid.New()
	goalId := uuid.New()

	t.Run("Final Approval Deducts Atomically", func(t *testing.T) {
		service, goals, withdrawals, _, notifier := newTestService()
		req := pendingRequest(goalId, owner, second, "400")

		withdrawals.On("GetWithdrawal", mock.Anything, req.Id).Once().Return(req, nil)
		withdrawals.On("ApproveWithdrawal", mock.Anything, mock.MatchedBy(func(r *models.WithdrawalRequest) bool {
			return r.Status == models.APPROVED && r.Version == 2
		})).Once().Return(&models.Goal{}, nil)
		goals.On("GetGoal", mock.Anything, goalId).Once().Return(&models.Goal{Id: goalId, Title: "House deposit"}, nil)
		notifier.On("Notify", mock.Anything, owner, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once().Return(nil)

		updated, err := service.RecordApproval(context.Background(), req.Id, second, models.APPROVED)

		assert.NoError(t, err)
		assert.Equal(t, models.APPROVED, updated.Status)
		// The deduction only ever travels inside the transactional approval.
		goals.AssertNotCalled(t, "DeductAmount", mock.Anything, mock.Anything, mock.Anything)
		withdrawals.AssertNotCalled(t, "SaveWithdrawal", mock.Anything, mock.Anything)
		goals.AssertExpectations(t)
		withdrawals.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("Lost Race Retry Deducts Once", func(t *testing.T) {
		service, goals, withdrawals, _, notifier := newTestService()
		req := pendingRequest(goalId, owner, second, "400")

		// A concurrent writer wins the first round; the caller retries from a
		// fresh read and the second attempt commits.
		withdrawals.On("GetWithdrawal", mock.Anything, req.Id).Twice().Return(req, nil)
		withdrawals.On("ApproveWithdrawal", mock.Anything, mock.Anything).Once().Return(nil, storage.ErrVersionConflict)
		withdrawals.On("ApproveWithdrawal", mock.Anything, mock.Anything).Once().Return(&models.Goal{}, nil)
		goals.On("GetGoal", mock.Anything, goalId).Once().Return(&models.Goal{Id: goalId, Title: "House deposit"}, nil)
		notifier.On("Notify", mock.Anything, owner, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once().Return(nil)

		_, err := service.RecordApproval(context.Background(), req.Id, second, models.APPROVED)
		assert.ErrorIs(t, err, storage.ErrVersionConflict)

		updated, err := service.RecordApproval(context.Background(), req.Id, second, models.APPROVED)
		assert.NoError(t, err)
		assert.Equal(t, models.APPROVED, updated.Status)

		// The failed round applied nothing, so the retry carries the one and
		// only deduction.
		goals.AssertNotCalled(t, "DeductAmount", mock.Anything, mock.Anything, mock.Anything)
		withdrawals.AssertNumberOfCalls(t, "ApproveWithdrawal", 2)
		withdrawals.AssertExpectations(t)
	})

	t.Run("Rejection Skips Deduction", func(t *testing.T) {
		service, goals, withdrawals, _, notifier := newTestService()
		req := pendingRequest(goalId, owner, second, "400")

		withdrawals.On("GetWithdrawal", mock.Anything, req.Id).Once().Return(req, nil)
		withdrawals.On("SaveWithdrawal", mock.Anything, mock.Anything).Once().Return(nil)
		goals.On("GetGoal", mock.Anything, goalId).Once().Return(&models.Goal{Id: goalId, Title: "House deposit"}, nil)
		notifier.On("Notify", mock.Anything, owner, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once().Return(nil)

		updated, err := service.RecordApproval(context.Background(), req.Id, second, models.REJECTED)

		assert.NoError(t, err)
		assert.Equal(t, models.REJECTED, updated.Status)
		goals.AssertNotCalled(t, "DeductAmount", mock.Anything, mock.Anything, mock.Anything)
		withdrawals.AssertNotCalled(t, "ApproveWithdrawal", mock.Anything, mock.Anything)
	})

	t.Run("Intermediate Approval Stays Pending", func(t *testing.T) {
		service, goals, withdrawals, _, notifier := newTestService()
		third := uuid.New()
		req := pendingRequest(goalId, owner, second, "400")
		req.Approvals = append(req.Approvals, models.Approval{UserId: third, Status: models.PENDING})

		withdrawals.On("GetWithdrawal", mock.Anything, req.Id).Once().Return(req, nil)
		withdrawals.On("SaveWithdrawal", mock.Anything, mock.Anything).Once().Return(nil)

		updated, err := service.RecordApproval(context.Background(), req.Id, second, models.APPROVED)

		assert.NoError(t, err)
		assert.Equal(t, models.PENDING, updated.Status)
		goals.AssertNotCalled(t, "DeductAmount", mock.Anything, mock.Anything, mock.Anything)
		withdrawals.AssertNotCalled(t, "ApproveWithdrawal", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Finalized Request Rejects Decisions", func(t *testing.T) {
		service, _, withdrawals, _, _ := newTestService()
		req := pendingRequest(goalId, owner, second, "400")
		req.Status = models.REJECTED

		withdrawals.On("GetWithdrawal", mock.Anything, req.Id).Once().Return(req, nil)

		_, err := service.RecordApproval(context.Background(), req.Id, second, models.APPROVED)

		assert.ErrorIs(t, err, ErrRequestFinalized)
		withdrawals.AssertNotCalled(t, "SaveWithdrawal", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Decision", func(t *testing.T) {
		service, _, withdrawals, _, _ := newTestService()

		_, err := service.RecordApproval(context.Background(), uuid.New(), second, models.PENDING)

		assert.ErrorIs(t, err, ErrInvalidDecision)
		withdrawals.AssertNotCalled(t, "GetWithdrawal", mock.Anything, mock.Anything)
	})

	t.Run("Voter Without A Slot", func(t *testing.T) {
		service, _, withdrawals, _, _ := newTestService()
		req := pendingRequest(goalId, owner, second, "400")

		withdrawals.On("GetWithdrawal", mock.Anything, req.Id).Once().Return(req, nil)

		_, err := service.RecordApproval(context.Background(), req.Id, uuid.New(), models.APPROVED)

		assert.ErrorIs(t, err, storage.ErrMemberNotFound)
	})

	t.Run("Failed Approval Keeps Request Pending", func(t *testing.T) {
		service, _, withdrawals, _, notifier := newTestService()
		req := pendingRequest(goalId, owner, second, "400")

		withdrawals.On("GetWithdrawal", mock.Anything, req.Id).Once().Return(req, nil)
		withdrawals.On("ApproveWithdrawal", mock.Anything, mock.Anything).Once().Return(nil, storage.ErrInsufficientFunds)

		_, err := service.RecordApproval(context.Background(), req.Id, second, models.APPROVED)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		withdrawals.AssertNotCalled(t, "SaveWithdrawal", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
