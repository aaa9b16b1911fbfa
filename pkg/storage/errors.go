package storage

import "errors"

// ErrGoalNotFound is returned when the referenced goal does not exist.
var ErrGoalNotFound = errors.New("goal not found")

// ErrRequestNotFound is returned when the referenced withdrawal request does not exist.
var ErrRequestNotFound = errors.New("withdrawal request not found")

// ErrInvitationNotFound is returned when the referenced invitation does not exist.
var ErrInvitationNotFound = errors.New("invitation not found")

// ErrMemberNotFound is returned when a user holds no membership (or approval slot) on the goal.
var ErrMemberNotFound = errors.New("member not found in this goal")

// ErrMemberExists is returned when a user to be added already holds a member slot on the goal.
var ErrMemberExists = errors.New("member already exists in this goal")

// ErrInsufficientFunds is returned when a deduction would exceed the goal's funded amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrVersionConflict is returned when a conditional write loses an optimistic-locking race.
// Callers may retry the whole read-modify-write.
var ErrVersionConflict = errors.New("version conflict")
