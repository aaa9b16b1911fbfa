package health

import "github.com/shopspring/decimal"

// HealthStatus labels the overall score.
type HealthStatus string

const (
	StatusExcellent HealthStatus = "EXCELLENT"
	StatusGood      HealthStatus = "GOOD"
	StatusFair      HealthStatus = "FAIR"
	StatusPoor      HealthStatus = "POOR"
	StatusCritical  HealthStatus = "CRITICAL"
	// StatusUnknown is the safe default when the calculation itself failed.
	StatusUnknown HealthStatus = "UNKNOWN"
)

// Fixed weights of the five metrics, in percent. They sum to 100.
const (
	netWorthWeight  = 25
	liquidityWeight = 25
	budgetWeight    = 20
	debtWeight      = 20
	freedomWeight   = 10
)

// OverallScore combines the categorical metric ratings into a single 0-100
// score: each rating maps to fixed points, the weighted sum is floor-divided
// by 100 and clamped. Freedom progress is capped at 100 but enters the sum
// unchanged when negative; only the total is clamped at zero.
func OverallScore(nw NetWorthRating, liq LiquiditySafetyLevel, budget BudgetCompliance, debt DebtRiskLevel, freedomProgress decimal.Decimal) int {
	freedomScore := int(freedomProgress.IntPart())
	if freedomScore > 100 {
		freedomScore = 100
	}

	total := (netWorthPoints(nw)*netWorthWeight +
		liquidityPoints(liq)*liquidityWeight +
		budgetPoints(budget)*budgetWeight +
		debtPoints(debt)*debtWeight +
		freedomScore*freedomWeight) / 100

	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

// StatusForScore labels an overall score.
func StatusForScore(score int) HealthStatus {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusGood
	case score >= 40:
		return StatusFair
	case score >= 20:
		return StatusPoor
	default:
		return StatusCritical
	}
}

func netWorthPoints(rating NetWorthRating) int {
	switch rating {
	case NetWorthExcellent:
		return 100
	case NetWorthGood:
		return 75
	case NetWorthFair:
		return 50
	case NetWorthPoor:
		return 25
	}
	return 0
}

func liquidityPoints(level LiquiditySafetyLevel) int {
	switch level {
	case LiquidityExcellent:
		return 100
	case LiquidityVerySafe:
		return 85
	case LiquiditySafe:
		return 70
	case LiquidityLow:
		return 40
	case LiquidityCritical:
		return 20
	}
	return 0
}

func budgetPoints(compliance BudgetCompliance) int {
	switch compliance {
	case BudgetExcellent:
		return 100
	case BudgetGood:
		return 75
	case BudgetFair:
		return 50
	case BudgetPoor:
		return 25
	}
	return 0
}

func debtPoints(level DebtRiskLevel) int {
	switch level {
	case DebtExcellent:
		return 100
	case DebtGood:
		return 80
	case DebtModerate:
		return 60
	case DebtHigh:
		return 35
	case DebtCritical:
		return 15
	}
	return 0
}
