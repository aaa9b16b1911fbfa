// Package api defines the request and response shapes of the HTTP surface.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// FinancialHealthResponse is the full financial-health report for one user.
type FinancialHealthResponse struct {
	UserId       string             `json:"user_id"`
	CalculatedAt openapi_types.Date `json:"calculated_at"`

	// Net worth
	NetWorth         decimal.Decimal `json:"net_worth"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	NetWorthRating   string          `json:"net_worth_rating"`

	// Liquidity
	LiquidAssets             decimal.Decimal `json:"liquid_assets"`
	MonthlyEssentialExpenses decimal.Decimal `json:"monthly_essential_expenses"`
	LiquidityMonths          decimal.Decimal `json:"liquidity_months"`
	LiquiditySafetyLevel     string          `json:"liquidity_safety_level"`

	// 50/30/20 budget rule
	NeedsAmount      decimal.Decimal `json:"needs_amount"`
	NeedsPercent     decimal.Decimal `json:"needs_percent"`
	WantsAmount      decimal.Decimal `json:"wants_amount"`
	WantsPercent     decimal.Decimal `json:"wants_percent"`
	SavingsAmount    decimal.Decimal `json:"savings_amount"`
	SavingsPercent   decimal.Decimal `json:"savings_percent"`
	BudgetCompliance string          `json:"budget_compliance"`

	// Debt to income
	MonthlyIncome       decimal.Decimal `json:"monthly_income"`
	MonthlyDebtPayments decimal.Decimal `json:"monthly_debt_payments"`
	DebtToIncomeRatio   decimal.Decimal `json:"debt_to_income_ratio"`
	DebtRiskLevel       string          `json:"debt_risk_level"`

	// Financial freedom
	AnnualExpenses         decimal.Decimal `json:"annual_expenses"`
	FinancialFreedomNumber decimal.Decimal `json:"financial_freedom_number"`
	CurrentProgress        decimal.Decimal `json:"current_progress"`
	YearsToFreedom         decimal.Decimal `json:"years_to_freedom"`

	OverallScore    int      `json:"overall_score"`
	Status          string   `json:"status"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// NewGoal is the request body for creating a shared goal.
type NewGoal struct {
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Locked       bool            `json:"locked"`
	OwnerName    string          `json:"owner_name"`
}

// GoalMember is one participant of a goal.
type GoalMember struct {
	UserId            string          `json:"user_id"`
	UserName          string          `json:"user_name"`
	ContributedAmount decimal.Decimal `json:"contributed_amount"`
	TargetAmount      decimal.Decimal `json:"target_amount"`
	Role              string          `json:"role"`
}

// Goal is a shared goal with its members.
type Goal struct {
	Id            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Locked        bool            `json:"locked"`
	Members       []GoalMember    `json:"members"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewContribution is the request body for contributing to a goal.
type NewContribution struct {
	Amount decimal.Decimal `json:"amount"`
}

// NewWithdrawal is the request body for opening a withdrawal request.
type NewWithdrawal struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ApprovalDecision is the request body for voting on a withdrawal request.
type ApprovalDecision struct {
	Decision string `json:"decision"`
}

// Approval is one member's vote on a withdrawal request.
type Approval struct {
	UserId    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WithdrawalRequest is a withdrawal request with its approvals.
type WithdrawalRequest struct {
	Id          string          `json:"id"`
	GoalId      string          `json:"goal_id"`
	RequesterId string          `json:"requester_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	Approvals   []Approval      `json:"approvals"`
}

// Settlement is one directed transfer of the settlement plan.
type Settlement struct {
	FromUserId   string          `json:"from_user_id"`
	FromUserName string          `json:"from_user_name"`
	ToUserId     string          `json:"to_user_id"`
	ToUserName   string          `json:"to_user_name"`
	Amount       decimal.Decimal `json:"amount"`
}

// NewInvitation is the request body for inviting a user to a goal.
type NewInvitation struct {
	InvitedUserId string          `json:"invited_user_id"`
	InvitedName   string          `json:"invited_name"`
	Role          string          `json:"role"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	Message       string          `json:"message"`
}

// Invitation is a goal invitation.
type Invitation struct {
	Id            string          `json:"id"`
	GoalId        string          `json:"goal_id"`
	GoalTitle     string          `json:"goal_title"`
	InvitedUserId string          `json:"invited_user_id"`
	InvitedBy     string          `json:"invited_by"`
	Role          string          `json:"role"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	Status        string          `json:"status"`
	Message       string          `json:"message"`
	InvitedAt     time.Time       `json:"invited_at"`
}

// SpendingSummary reports expense totals per category with a suggestion.
type SpendingSummary struct {
	ByCategory map[string]decimal.Decimal `json:"by_category"`
	Suggestion string                     `json:"suggestion"`
}
