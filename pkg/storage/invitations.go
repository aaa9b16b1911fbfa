package storage

import (
	"context"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/google/uuid"
)

// InvitationStore defines the interface for persisting goal invitations.
type InvitationStore interface {
	// SaveInvitation persists a new or updated invitation.
	SaveInvitation(ctx context.Context, inv *models.GoalInvitation) error

	// GetInvitation retrieves an invitation by ID.
	GetInvitation(ctx context.Context, invitationId uuid.UUID) (*models.GoalInvitation, error)

	// InvitationExists reports whether the user has already been invited to the goal.
	InvitationExists(ctx context.Context, goalId, userId uuid.UUID) (bool, error)

	// ListPendingInvitations retrieves the user's unanswered invitations.
	ListPendingInvitations(ctx context.Context, userId uuid.UUID) ([]models.GoalInvitation, error)
}
