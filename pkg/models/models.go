package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType defines the kind of account a balance lives in.
type AccountType string

const (
	CASH       AccountType = "CASH"
	BANK       AccountType = "BANK"
	E_WALLET   AccountType = "E_WALLET"
	CREDIT     AccountType = "CREDIT"
	INVESTMENT AccountType = "INVESTMENT"
)

// IsLiquid reports whether balances of this type count as liquid assets.
func (t AccountType) IsLiquid() bool {
	return t == CASH || t == BANK || t == E_WALLET
}

// Account represents a single account owned by a user. For CREDIT accounts a
// negative balance means money owed.
type Account struct {
	Id        uuid.UUID       `json:"id" dynamodbav:"id"`
	OwnerId   uuid.UUID       `json:"owner_id" dynamodbav:"owner_id"`
	Name      string          `json:"name" dynamodbav:"name"`
	Type      AccountType     `json:"type" dynamodbav:"type"`
	Balance   decimal.Decimal `json:"balance" dynamodbav:"balance"`
	CreatedAt time.Time       `json:"created_at" dynamodbav:"created_at"`
}

// TransactionType defines the direction of a transaction.
type TransactionType string

const (
	INCOME  TransactionType = "INCOME"
	EXPENSE TransactionType = "EXPENSE"
)

// Transaction represents a single income or expense entry.
type Transaction struct {
	Id        uuid.UUID       `json:"id" dynamodbav:"id"`
	OwnerId   uuid.UUID       `json:"owner_id" dynamodbav:"owner_id"`
	AccountId uuid.UUID       `json:"account_id" dynamodbav:"account_id"`
	Amount    decimal.Decimal `json:"amount" dynamodbav:"amount"`
	Category  string          `json:"category" dynamodbav:"category"`
	Type      TransactionType `json:"type" dynamodbav:"type"`
	Date      time.Time       `json:"date" dynamodbav:"date"`
}

// DebtType defines whether the owner lent or borrowed the money.
type DebtType string

const (
	LEND   DebtType = "LEND"
	BORROW DebtType = "BORROW"
)

// DebtStatus defines the lifecycle state of a debt.
type DebtStatus string

const (
	DebtActive DebtStatus = "ACTIVE"
	DebtPaid   DebtStatus = "PAID"
)

// Debt represents money lent to or borrowed from a counterpart.
// Only BORROW debts with ACTIVE status count as liabilities.
type Debt struct {
	Id              uuid.UUID       `json:"id" dynamodbav:"id"`
	OwnerId         uuid.UUID       `json:"owner_id" dynamodbav:"owner_id"`
	Type            DebtType        `json:"type" dynamodbav:"type"`
	Amount          decimal.Decimal `json:"amount" dynamodbav:"amount"`
	Status          DebtStatus      `json:"status" dynamodbav:"status"`
	DueDate         time.Time       `json:"due_date" dynamodbav:"due_date"`
	InterestRate    decimal.Decimal `json:"interest_rate" dynamodbav:"interest_rate"`
	CounterpartName string          `json:"counterpart_name" dynamodbav:"counterpart_name"`
}

// GoalRole defines a member's role within a shared goal.
type GoalRole string

const (
	RoleOwner  GoalRole = "OWNER"
	RoleMember GoalRole = "MEMBER"
)

// GoalMember is a single participant in a shared goal.
type GoalMember struct {
	UserId            uuid.UUID       `json:"user_id" dynamodbav:"user_id"`
	UserName          string          `json:"user_name" dynamodbav:"user_name"`
	ContributedAmount decimal.Decimal `json:"contributed_amount" dynamodbav:"contributed_amount"`
	TargetAmount      decimal.Decimal `json:"target_amount" dynamodbav:"target_amount"`
	Role              GoalRole        `json:"role" dynamodbav:"role"`
}

// Goal is a shared savings goal funded by its members. CurrentAmount always
// equals the sum of all members' contributed amounts; it only changes through
// contributions and approved-withdrawal deductions. Version backs optimistic
// locking in the storage layer.
type Goal struct {
	Id            uuid.UUID       `json:"id" dynamodbav:"id"`
	Title         string          `json:"title" dynamodbav:"title"`
	TargetAmount  decimal.Decimal `json:"target_amount" dynamodbav:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount" dynamodbav:"current_amount"`
	Locked        bool            `json:"locked" dynamodbav:"locked"`
	Members       []GoalMember    `json:"members" dynamodbav:"members"`
	Version       int64           `json:"version" dynamodbav:"version"`
	CreatedAt     time.Time       `json:"created_at" dynamodbav:"created_at"`
}

// Member returns the member entry for the given user, if present.
func (g *Goal) Member(userId uuid.UUID) (GoalMember, bool) {
	for _, m := range g.Members {
		if m.UserId == userId {
			return m, true
		}
	}
	return GoalMember{}, false
}

// WithMember returns a copy of the goal with the member appended and the
// version bumped. The second return value is false when the user already holds
// a member slot; a second slot would double-count that user in settlements.
func (g Goal) WithMember(member GoalMember) (Goal, bool) {
	if _, ok := g.Member(member.UserId); ok {
		return g, false
	}
	members := make([]GoalMember, 0, len(g.Members)+1)
	members = append(members, g.Members...)
	members = append(members, member)
	g.Members = members
	g.Version++
	return g, true
}

// WithContribution returns a copy of the goal with the member's contributed
// amount and the goal's current amount both increased by amount.
func (g Goal) WithContribution(userId uuid.UUID, amount decimal.Decimal) (Goal, bool) {
	members := make([]GoalMember, len(g.Members))
	found := false
	for i, m := range g.Members {
		if m.UserId == userId {
			m.ContributedAmount = m.ContributedAmount.Add(amount)
			found = true
		}
		members[i] = m
	}
	if !found {
		return g, false
	}
	g.Members = members
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.Version++
	return g, true
}

// WithDeduction returns a copy of the goal with the current amount reduced.
// The caller validates that amount does not exceed the current amount.
func (g Goal) WithDeduction(amount decimal.Decimal) Goal {
	g.CurrentAmount = g.CurrentAmount.Sub(amount)
	g.Version++
	return g
}

// ApprovalStatus is used both for individual approvals and for the aggregate
// status of a withdrawal request.
type ApprovalStatus string

const (
	PENDING  ApprovalStatus = "PENDING"
	APPROVED ApprovalStatus = "APPROVED"
	REJECTED ApprovalStatus = "REJECTED"
)

// Approval is one member's vote on a withdrawal request.
type Approval struct {
	UserId    uuid.UUID      `json:"user_id" dynamodbav:"user_id"`
	UserName  string         `json:"user_name" dynamodbav:"user_name"`
	Status    ApprovalStatus `json:"status" dynamodbav:"status"`
	UpdatedAt time.Time      `json:"updated_at" dynamodbav:"updated_at"`
}

// WithdrawalRequest asks the members of a goal to release funds. The aggregate
// Status is derived from the individual approvals and is terminal once it
// leaves PENDING.
type WithdrawalRequest struct {
	Id          uuid.UUID       `json:"id" dynamodbav:"id"`
	GoalId      uuid.UUID       `json:"goal_id" dynamodbav:"goal_id"`
	RequesterId uuid.UUID       `json:"requester_id" dynamodbav:"requester_id"`
	Amount      decimal.Decimal `json:"amount" dynamodbav:"amount"`
	Description string          `json:"description" dynamodbav:"description"`
	Status      ApprovalStatus  `json:"status" dynamodbav:"status"`
	CreatedAt   time.Time       `json:"created_at" dynamodbav:"created_at"`
	Approvals   []Approval      `json:"approvals" dynamodbav:"approvals"`
	Version     int64           `json:"version" dynamodbav:"version"`
}

// Finalized reports whether the request has reached a terminal status.
func (r *WithdrawalRequest) Finalized() bool {
	return r.Status == APPROVED || r.Status == REJECTED
}

// WithApproval returns a copy of the request with the given member's approval
// entry replaced, the aggregate status recomputed and the version bumped.
// The boolean is false when the user holds no approval slot on the request.
func (r WithdrawalRequest) WithApproval(userId uuid.UUID, status ApprovalStatus, at time.Time) (WithdrawalRequest, bool) {
	approvals := make([]Approval, len(r.Approvals))
	found := false
	for i, a := range r.Approvals {
		if a.UserId == userId {
			a.Status = status
			a.UpdatedAt = at
			found = true
		}
		approvals[i] = a
	}
	if !found {
		return r, false
	}
	r.Approvals = approvals
	r.Status = aggregateStatus(approvals)
	r.Version++
	return r, true
}

// aggregateStatus derives the request status from the individual approvals:
// APPROVED iff every approval is APPROVED, REJECTED iff any approval is
// REJECTED, PENDING otherwise.
func aggregateStatus(approvals []Approval) ApprovalStatus {
	allApproved := true
	for _, a := range approvals {
		if a.Status == REJECTED {
			return REJECTED
		}
		if a.Status != APPROVED {
			allApproved = false
		}
	}
	if allApproved && len(approvals) > 0 {
		return APPROVED
	}
	return PENDING
}

// Settlement is a directed transfer that moves one member's balance toward
// zero. It is computed on demand and never persisted.
type Settlement struct {
	FromUserId   uuid.UUID       `json:"from_user_id"`
	FromUserName string          `json:"from_user_name"`
	ToUserId     uuid.UUID       `json:"to_user_id"`
	ToUserName   string          `json:"to_user_name"`
	Amount       decimal.Decimal `json:"amount"`
}

// InvitationStatus defines the lifecycle state of a goal invitation.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
)

// GoalInvitation invites a user to join a shared goal with a role and an
// individual target amount.
type GoalInvitation struct {
	Id            uuid.UUID        `json:"id" dynamodbav:"id"`
	GoalId        uuid.UUID        `json:"goal_id" dynamodbav:"goal_id"`
	GoalTitle     string           `json:"goal_title" dynamodbav:"goal_title"`
	InvitedUserId uuid.UUID        `json:"invited_user_id" dynamodbav:"invited_user_id"`
	InvitedBy     uuid.UUID        `json:"invited_by" dynamodbav:"invited_by"`
	InvitedName   string           `json:"invited_name" dynamodbav:"invited_name"`
	Role          GoalRole         `json:"role" dynamodbav:"role"`
	TargetAmount  decimal.Decimal  `json:"target_amount" dynamodbav:"target_amount"`
	Status        InvitationStatus `json:"status" dynamodbav:"status"`
	Message       string           `json:"message" dynamodbav:"message"`
	InvitedAt     time.Time        `json:"invited_at" dynamodbav:"invited_at"`
	RespondedAt   *time.Time       `json:"responded_at,omitempty" dynamodbav:"responded_at,omitempty"`
}

// Pending reports whether the invitation can still be answered.
func (i *GoalInvitation) Pending() bool {
	return i.Status == InvitationPending
}
