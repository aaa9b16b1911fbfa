package goalfund

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/chitieu-app/chitieu/pkg/notify"
	"github.com/chitieu-app/chitieu/pkg/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invite creates a pending invitation for a user to join the goal with the
// given role and individual target. Duplicate invitations and existing members
// are rejected. The invited user is notified.
func (s *Service) Invite(ctx context.Context, goalId, invitedUserId, invitedBy uuid.UUID, invitedName string, role models.GoalRole, targetAmount decimal.Decimal, message string) (*models.GoalInvitation, error) {
	goal, err := s.Goals.GetGoal(ctx, goalId)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	if _, ok := goal.Member(invitedUserId); ok {
		return nil, ErrAlreadyMember
	}

	exists, err := s.Invitations.InvitationExists(ctx, goalId, invitedUserId)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing invitations: %w", err)
	}
	if exists {
		return nil, ErrAlreadyInvited
	}

	inv := &models.GoalInvitation{
		Id:            uuid.New(),
		GoalId:        goalId,
		GoalTitle:     goal.Title,
		InvitedUserId: invitedUserId,
		InvitedBy:     invitedBy,
		InvitedName:   invitedName,
		Role:          role,
		TargetAmount:  targetAmount,
		Status:        models.InvitationPending,
		Message:       message,
		InvitedAt:     time.Now(),
	}

	if err := s.Invitations.SaveInvitation(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to save invitation: %w", err)
	}

	s.sendNotification(ctx, invitedUserId,
		"Goal invitation",
		fmt.Sprintf("You have been invited to join %s", goal.Title),
		notify.EventGoalInvitation,
		map[string]string{"goalId": goalId.String(), "invitationId": inv.Id.String()})

	return inv, nil
}

// AcceptInvitation answers a pending invitation and adds the invited user to
// the goal with a zero contribution and the invitation's target and role.
// Only the invited user may accept.
func (s *Service) AcceptInvitation(ctx context.Context, invitationId, userId uuid.UUID) error {
	inv, err := s.Invitations.GetInvitation(ctx, invitationId)
	if err != nil {
		return fmt.Errorf("failed to get invitation: %w", err)
	}
	if inv.InvitedUserId != userId {
		return ErrNotInvitee
	}
	if !inv.Pending() {
		return ErrInvitationNotPending
	}

	member := models.GoalMember{
		UserId:            userId,
		UserName:          inv.InvitedName,
		ContributedAmount: decimal.Zero,
		TargetAmount:      inv.TargetAmount,
		Role:              inv.Role,
	}
	// A retry after a failed invitation save finds the member already added;
	// treat that as done rather than creating a second slot.
	if err := s.Goals.AddMember(ctx, inv.GoalId, member); err != nil && !errors.Is(err, storage.ErrMemberExists) {
		return fmt.Errorf("failed to add member: %w", err)
	}

	now := time.Now()
	inv.Status = models.InvitationAccepted
	inv.RespondedAt = &now
	if err := s.Invitations.SaveInvitation(ctx, inv); err != nil {
		return fmt.Errorf("failed to save invitation: %w", err)
	}

	return nil
}

// DeclineInvitation answers a pending invitation negatively. Only the invited
// user may decline.
func (s *Service) DeclineInvitation(ctx context.Context, invitationId, userId uuid.UUID) error {
	inv, err := s.Invitations.GetInvitation(ctx, invitationId)
	if err != nil {
		return fmt.Errorf("failed to get invitation: %w", err)
	}
	if inv.InvitedUserId != userId {
		return ErrNotInvitee
	}
	if !inv.Pending() {
		return ErrInvitationNotPending
	}

	now := time.Now()
	inv.Status = models.InvitationDeclined
	inv.RespondedAt = &now
	if err := s.Invitations.SaveInvitation(ctx, inv); err != nil {
		return fmt.Errorf("failed to save invitation: %w", err)
	}

	return nil
}

// PendingInvitations lists the user's unanswered invitations.
func (s *Service) PendingInvitations(ctx context.Context, userId uuid.UUID) ([]models.GoalInvitation, error) {
	return s.Invitations.ListPendingInvitations(ctx, userId)
}
