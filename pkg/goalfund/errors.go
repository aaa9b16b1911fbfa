package goalfund

import "errors"

// ErrNonPositiveAmount is returned when a contribution or withdrawal amount is zero or negative.
var ErrNonPositiveAmount = errors.New("amount must be positive")

// ErrRequestFinalized is returned when recording an approval on a request that
// has already reached a terminal status.
var ErrRequestFinalized = errors.New("withdrawal request already finalized")

// ErrInvalidDecision is returned when an approval decision is neither APPROVED nor REJECTED.
var ErrInvalidDecision = errors.New("decision must be APPROVED or REJECTED")

// ErrNotInvitee is returned when someone other than the invited user answers an invitation.
var ErrNotInvitee = errors.New("not the invited user")

// ErrInvitationNotPending is returned when answering an invitation that was already answered.
var ErrInvitationNotPending = errors.New("invitation is not pending")

// ErrAlreadyInvited is returned when the user already has an invitation to the goal.
var ErrAlreadyInvited = errors.New("user already invited to this goal")

// ErrAlreadyMember is returned when inviting a user who is already a goal member.
var ErrAlreadyMember = errors.New("user is already a member of this goal")
