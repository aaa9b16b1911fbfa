package health

import (
	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/shopspring/decimal"
)

// SpendingByCategory totals the snapshot's expenses per category.
func SpendingByCategory(s *Snapshot) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, t := range s.Transactions {
		if t.Type != models.EXPENSE {
			continue
		}
		out[t.Category] = out[t.Category].Add(t.Amount)
	}
	return out
}

// foodSpendingAlertThreshold triggers the dining suggestion.
var foodSpendingAlertThreshold = decimal.NewFromInt(5000000)

// SpendingSuggestion returns a rule-based recommendation for the snapshot.
func SpendingSuggestion(s *Snapshot) string {
	spending := SpendingByCategory(s)
	if spending["Food"].GreaterThan(foodSpendingAlertThreshold) {
		return "Your Dining expense is high. Reducing eating out could save you 20% this month."
	}
	return "Your financial health is stable. Keep tracking your daily transactions."
}
