package goalfund

import (
	"context"
	"fmt"
	"sort"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memberBalance is a member's contribution relative to their individual
// target. Negative means behind target (debtor), positive means ahead
// (creditor).
type memberBalance struct {
	userId   uuid.UUID
	userName string
	balance  decimal.Decimal
}

// Settlements computes the transfer plan for a goal's current member state.
func (s *Service) Settlements(ctx context.Context, goalId uuid.UUID) ([]models.Settlement, error) {
	goal, err := s.Goals.GetGoal(ctx, goalId)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return CalculateSettlements(goal.Members), nil
}

// CalculateSettlements computes the minimal list of directed transfers that
// zeroes every member's balance (contributed minus target). Debtors are
// matched greedily against creditors, most negative against largest first;
// ties break on user ID so the output is deterministic. At most
// debtors+creditors-1 settlements are emitted.
func CalculateSettlements(members []models.GoalMember) []models.Settlement {
	var debtors, creditors []memberBalance
	for _, m := range members {
		balance := m.ContributedAmount.Sub(m.TargetAmount)
		entry := memberBalance{userId: m.UserId, userName: m.UserName, balance: balance}
		switch balance.Sign() {
		case -1:
			debtors = append(debtors, entry)
		case 1:
			creditors = append(creditors, entry)
		}
	}

	sort.Slice(debtors, func(i, j int) bool {
		if c := debtors[i].balance.Cmp(debtors[j].balance); c != 0 {
			return c < 0
		}
		return debtors[i].userId.String() < debtors[j].userId.String()
	})
	sort.Slice(creditors, func(i, j int) bool {
		if c := creditors[i].balance.Cmp(creditors[j].balance); c != 0 {
			return c > 0
		}
		return creditors[i].userId.String() < creditors[j].userId.String()
	})

	var settlements []models.Settlement
	d, c := 0, 0
	for d < len(debtors) && c < len(creditors) {
		debtor := &debtors[d]
		creditor := &creditors[c]

		amount := decimal.Min(debtor.balance.Abs(), creditor.balance)

		settlements = append(settlements, models.Settlement{
			FromUserId:   debtor.userId,
			FromUserName: debtor.userName,
			ToUserId:     creditor.userId,
			ToUserName:   creditor.userName,
			Amount:       amount,
		})

		debtor.balance = debtor.balance.Add(amount)
		creditor.balance = creditor.balance.Sub(amount)

		if debtor.balance.IsZero() {
			d++
		}
		if creditor.balance.IsZero() {
			c++
		}
	}

	return settlements
}
