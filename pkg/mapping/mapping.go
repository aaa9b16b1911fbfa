// Package mapping translates between the internal domain models and the API models.
package mapping

import (
	"github.com/chitieu-app/chitieu/pkg/api"
	"github.com/chitieu-app/chitieu/pkg/health"
	"github.com/chitieu-app/chitieu/pkg/models"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ToApiHealthResponse converts computed metrics to the API response model.
func ToApiHealthResponse(m *health.Metrics) *api.FinancialHealthResponse {
	return &api.FinancialHealthResponse{
		UserId:       m.OwnerId.String(),
		CalculatedAt: openapi_types.Date{Time: m.CalculatedAt},

		NetWorth:         m.NetWorth.NetWorth,
		TotalAssets:      m.NetWorth.TotalAssets,
		TotalLiabilities: m.NetWorth.TotalLiabilities,
		NetWorthRating:   string(m.NetWorth.Rating),

		LiquidAssets:             m.Liquidity.LiquidAssets,
		MonthlyEssentialExpenses: m.Liquidity.MonthlyEssentialExpenses,
		LiquidityMonths:          m.Liquidity.LiquidityMonths,
		LiquiditySafetyLevel:     string(m.Liquidity.SafetyLevel),

		NeedsAmount:      m.Budget.NeedsAmount,
		NeedsPercent:     m.Budget.NeedsPercent,
		WantsAmount:      m.Budget.WantsAmount,
		WantsPercent:     m.Budget.WantsPercent,
		SavingsAmount:    m.Budget.SavingsAmount,
		SavingsPercent:   m.Budget.SavingsPercent,
		BudgetCompliance: string(m.Budget.Compliance),

		MonthlyIncome:       m.Debt.MonthlyIncome,
		MonthlyDebtPayments: m.Debt.MonthlyDebtPayments,
		DebtToIncomeRatio:   m.Debt.DtiRatio,
		DebtRiskLevel:       string(m.Debt.RiskLevel),

		AnnualExpenses:         m.Freedom.AnnualExpenses,
		FinancialFreedomNumber: m.Freedom.FiNumber,
		CurrentProgress:        m.Freedom.ProgressPercent,
		YearsToFreedom:         m.Freedom.YearsToFreedom,

		OverallScore: m.OverallScore,
		Status:       string(m.Status),
	}
}

// ToApiGoal converts a domain goal to the API model.
func ToApiGoal(g *models.Goal) *api.Goal {
	members := make([]api.GoalMember, len(g.Members))
	for i, m := range g.Members {
		members[i] = api.GoalMember{
			UserId:            m.UserId.String(),
			UserName:          m.UserName,
			ContributedAmount: m.ContributedAmount,
			TargetAmount:      m.TargetAmount,
			Role:              string(m.Role),
		}
	}
	return &api.Goal{
		Id:            g.Id.String(),
		Title:         g.Title,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Locked:        g.Locked,
		Members:       members,
		CreatedAt:     g.CreatedAt,
	}
}

// ToApiWithdrawalRequest converts a domain withdrawal request to the API model.
func ToApiWithdrawalRequest(r *models.WithdrawalRequest) *api.WithdrawalRequest {
	approvals := make([]api.Approval, len(r.Approvals))
	for i, a := range r.Approvals {
		approvals[i] = api.Approval{
			UserId:    a.UserId.String(),
			UserName:  a.UserName,
			Status:    string(a.Status),
			UpdatedAt: a.UpdatedAt,
		}
	}
	return &api.WithdrawalRequest{
		Id:          r.Id.String(),
		GoalId:      r.GoalId.String(),
		RequesterId: r.RequesterId.String(),
		Amount:      r.Amount,
		Description: r.Description,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		Approvals:   approvals,
	}
}

// ToApiSettlement converts a domain settlement to the API model.
func ToApiSettlement(s *models.Settlement) *api.Settlement {
	return &api.Settlement{
		FromUserId:   s.FromUserId.String(),
		FromUserName: s.FromUserName,
		ToUserId:     s.ToUserId.String(),
		ToUserName:   s.ToUserName,
		Amount:       s.Amount,
	}
}

// ToApiInvitation converts a domain invitation to the API model.
func ToApiInvitation(i *models.GoalInvitation) *api.Invitation {
	return &api.Invitation{
		Id:            i.Id.String(),
		GoalId:        i.GoalId.String(),
		GoalTitle:     i.GoalTitle,
		InvitedUserId: i.InvitedUserId.String(),
		InvitedBy:     i.InvitedBy.String(),
		Role:          string(i.Role),
		TargetAmount:  i.TargetAmount,
		Status:        string(i.Status),
		Message:       i.Message,
		InvitedAt:     i.InvitedAt,
	}
}
