package health

import (
	"time"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// essentialCategories are the expense categories treated as non-discretionary
// ("needs" in the 50/30/20 rule, and the basis of the liquidity runway).
var essentialCategories = map[string]bool{
	"Food":           true,
	"Housing":        true,
	"Transportation": true,
	"Healthcare":     true,
	"Utilities":      true,
}

// discretionaryCategories are the expense categories treated as optional
// spending ("wants" in the 50/30/20 rule).
var discretionaryCategories = map[string]bool{
	"Entertainment": true,
	"Shopping":      true,
	"Dining":        true,
	"Travel":        true,
	"Hobbies":       true,
}

// NetWorthRating grades the net worth metric.
type NetWorthRating string

const (
	NetWorthExcellent NetWorthRating = "EXCELLENT"
	NetWorthGood      NetWorthRating = "GOOD"
	NetWorthFair      NetWorthRating = "FAIR"
	NetWorthPoor      NetWorthRating = "POOR"
)

// LiquiditySafetyLevel grades the liquidity runway in months.
type LiquiditySafetyLevel string

const (
	LiquidityExcellent LiquiditySafetyLevel = "EXCELLENT"
	LiquidityVerySafe  LiquiditySafetyLevel = "VERY_SAFE"
	LiquiditySafe      LiquiditySafetyLevel = "SAFE"
	LiquidityLow       LiquiditySafetyLevel = "LOW"
	LiquidityCritical  LiquiditySafetyLevel = "CRITICAL"
)

// BudgetCompliance grades adherence to the 50/30/20 rule.
type BudgetCompliance string

const (
	BudgetExcellent BudgetCompliance = "EXCELLENT"
	BudgetGood      BudgetCompliance = "GOOD"
	BudgetFair      BudgetCompliance = "FAIR"
	BudgetPoor      BudgetCompliance = "POOR"
)

// DebtRiskLevel grades the debt-to-income ratio.
type DebtRiskLevel string

const (
	DebtExcellent DebtRiskLevel = "EXCELLENT"
	DebtGood      DebtRiskLevel = "GOOD"
	DebtModerate  DebtRiskLevel = "MODERATE"
	DebtHigh      DebtRiskLevel = "HIGH"
	DebtCritical  DebtRiskLevel = "CRITICAL"
)

// NetWorthResult is the outcome of the net worth metric.
type NetWorthResult struct {
	NetWorth         decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	Rating           NetWorthRating
}

// LiquidityResult is the outcome of the liquidity runway metric.
type LiquidityResult struct {
	LiquidAssets             decimal.Decimal
	MonthlyEssentialExpenses decimal.Decimal
	LiquidityMonths          decimal.Decimal
	SafetyLevel              LiquiditySafetyLevel
}

// BudgetRuleResult is the outcome of the 50/30/20 budget metric.
type BudgetRuleResult struct {
	NeedsAmount    decimal.Decimal
	NeedsPercent   decimal.Decimal
	WantsAmount    decimal.Decimal
	WantsPercent   decimal.Decimal
	SavingsAmount  decimal.Decimal
	SavingsPercent decimal.Decimal
	TotalIncome    decimal.Decimal
	Compliance     BudgetCompliance
}

// DebtResult is the outcome of the debt-to-income metric.
type DebtResult struct {
	MonthlyIncome       decimal.Decimal
	MonthlyDebtPayments decimal.Decimal
	DtiRatio            decimal.Decimal
	RiskLevel           DebtRiskLevel
}

// FreedomResult is the outcome of the financial-freedom metric.
type FreedomResult struct {
	MonthlyExpenses decimal.Decimal
	AnnualExpenses  decimal.Decimal
	FiNumber        decimal.Decimal
	CurrentNetWorth decimal.Decimal
	ProgressPercent decimal.Decimal
	YearsToFreedom  decimal.Decimal
}

// Metrics bundles the five metric results with the aggregate score. One value
// is produced per calculation call and never mutated afterwards.
type Metrics struct {
	Id           uuid.UUID
	OwnerId      uuid.UUID
	CalculatedAt time.Time

	NetWorth  NetWorthResult
	Liquidity LiquidityResult
	Budget    BudgetRuleResult
	Debt      DebtResult
	Freedom   FreedomResult

	OverallScore int
	Status       HealthStatus
}

var (
	three      = decimal.NewFromInt(3)
	twelve     = decimal.NewFromInt(12)
	twentyFive = decimal.NewFromInt(25)
	hundred    = decimal.NewFromInt(100)
)

// Calculate runs all five metrics over the snapshot and aggregates the score.
func Calculate(s *Snapshot) *Metrics {
	netWorth := CalculateNetWorth(s)
	liquidity := CalculateLiquidity(s)
	budget := CalculateBudgetRule(s)
	debt := CalculateDebtToIncome(s)
	freedom := CalculateFinancialFreedom(s)

	score := OverallScore(netWorth.Rating, liquidity.SafetyLevel, budget.Compliance, debt.RiskLevel, freedom.ProgressPercent)

	return &Metrics{
		Id:           uuid.New(),
		OwnerId:      s.OwnerId,
		CalculatedAt: s.Now,
		NetWorth:     netWorth,
		Liquidity:    liquidity,
		Budget:       budget,
		Debt:         debt,
		Freedom:      freedom,
		OverallScore: score,
		Status:       StatusForScore(score),
	}
}

// CalculateNetWorth sums positive account balances into assets, and credit
// card debt plus active borrowings into liabilities.
func CalculateNetWorth(s *Snapshot) NetWorthResult {
	totalAssets := decimal.Zero
	creditDebt := decimal.Zero
	for _, a := range s.Accounts {
		if a.Balance.IsPositive() {
			totalAssets = totalAssets.Add(a.Balance)
		}
		if a.Type == models.CREDIT && a.Balance.IsNegative() {
			creditDebt = creditDebt.Add(a.Balance.Abs())
		}
	}

	loanDebt := decimal.Zero
	for _, d := range s.Debts {
		if d.Type == models.BORROW && d.Status == models.DebtActive {
			loanDebt = loanDebt.Add(d.Amount)
		}
	}

	totalLiabilities := creditDebt.Add(loanDebt)
	netWorth := totalAssets.Sub(totalLiabilities)

	// Year-over-year growth is not available from a single snapshot yet, so a
	// positive net worth always rates FAIR today.
	return NetWorthResult{
		NetWorth:         netWorth,
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		Rating:           RateNetWorth(netWorth, decimal.Zero),
	}
}

// RateNetWorth grades a net worth figure given its year-over-year growth rate.
func RateNetWorth(netWorth, growthRate decimal.Decimal) NetWorthRating {
	if netWorth.Sign() <= 0 {
		return NetWorthPoor
	}
	switch {
	case growthRate.GreaterThan(decimal.NewFromFloat(0.20)):
		return NetWorthExcellent
	case growthRate.GreaterThanOrEqual(decimal.NewFromFloat(0.05)):
		return NetWorthGood
	default:
		return NetWorthFair
	}
}

// CalculateLiquidity divides liquid assets by the trailing 3-month average of
// essential expenses.
func CalculateLiquidity(s *Snapshot) LiquidityResult {
	liquidAssets := decimal.Zero
	for _, a := range s.Accounts {
		if a.Type.IsLiquid() {
			liquidAssets = liquidAssets.Add(a.Balance)
		}
	}

	cutoff := s.Now.AddDate(0, -3, 0)
	totalEssential := decimal.Zero
	for _, t := range s.transactionsSince(cutoff, models.EXPENSE) {
		if essentialCategories[t.Category] {
			totalEssential = totalEssential.Add(t.Amount)
		}
	}
	monthlyEssential := totalEssential.DivRound(three, 2)

	liquidityMonths := decimal.Zero
	if monthlyEssential.IsPositive() {
		liquidityMonths = liquidAssets.DivRound(monthlyEssential, 2)
	}

	return LiquidityResult{
		LiquidAssets:             liquidAssets,
		MonthlyEssentialExpenses: monthlyEssential,
		LiquidityMonths:          liquidityMonths,
		SafetyLevel:              RateLiquidity(liquidityMonths),
	}
}

// RateLiquidity buckets a liquidity runway in months into a safety level.
func RateLiquidity(months decimal.Decimal) LiquiditySafetyLevel {
	switch {
	case months.GreaterThan(twelve):
		return LiquidityExcellent
	case months.GreaterThanOrEqual(decimal.NewFromInt(6)):
		return LiquidityVerySafe
	case months.GreaterThanOrEqual(three):
		return LiquiditySafe
	case months.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return LiquidityLow
	default:
		return LiquidityCritical
	}
}

// CalculateBudgetRule scores the last 30 days of transactions against the
// 50/30/20 rule. Savings is income minus needs minus wants and may be negative.
func CalculateBudgetRule(s *Snapshot) BudgetRuleResult {
	cutoff := s.Now.AddDate(0, -1, 0)

	totalIncome := decimal.Zero
	needs := decimal.Zero
	wants := decimal.Zero
	for _, t := range s.Transactions {
		if t.Date.Before(cutoff) {
			continue
		}
		switch t.Type {
		case models.INCOME:
			totalIncome = totalIncome.Add(t.Amount)
		case models.EXPENSE:
			if essentialCategories[t.Category] {
				needs = needs.Add(t.Amount)
			} else if discretionaryCategories[t.Category] {
				wants = wants.Add(t.Amount)
			}
		}
	}
	savings := totalIncome.Sub(needs).Sub(wants)

	needsPct := percentage(needs, totalIncome)
	wantsPct := percentage(wants, totalIncome)
	savingsPct := percentage(savings, totalIncome)

	return BudgetRuleResult{
		NeedsAmount:    needs,
		NeedsPercent:   needsPct,
		WantsAmount:    wants,
		WantsPercent:   wantsPct,
		SavingsAmount:  savings,
		SavingsPercent: savingsPct,
		TotalIncome:    totalIncome,
		Compliance:     RateBudget(needsPct, wantsPct, savingsPct),
	}
}

// RateBudget grades 50/30/20 percentages into a compliance level.
func RateBudget(needs, wants, savings decimal.Decimal) BudgetCompliance {
	fifty := decimal.NewFromInt(50)
	switch {
	case needs.LessThanOrEqual(fifty) && wants.LessThanOrEqual(decimal.NewFromInt(30)) && savings.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return BudgetExcellent
	case needs.LessThanOrEqual(decimal.NewFromInt(60)) && savings.GreaterThanOrEqual(decimal.NewFromInt(15)):
		return BudgetGood
	case needs.LessThanOrEqual(decimal.NewFromInt(70)) && savings.GreaterThanOrEqual(decimal.NewFromInt(10)):
		return BudgetFair
	default:
		return BudgetPoor
	}
}

// CalculateDebtToIncome estimates monthly debt service (3% of each credit card
// balance owed plus 1/12 of each active borrowing) against trailing 3-month
// average income.
func CalculateDebtToIncome(s *Snapshot) DebtResult {
	monthlyIncome := averageMonthlyTotal(s, models.INCOME, 3)

	creditPayments := decimal.Zero
	for _, a := range s.Accounts {
		if a.Type == models.CREDIT && a.Balance.IsNegative() {
			creditPayments = creditPayments.Add(a.Balance.Abs().Mul(decimal.NewFromFloat(0.03)))
		}
	}

	loanPayments := decimal.Zero
	for _, d := range s.Debts {
		if d.Type == models.BORROW && d.Status == models.DebtActive {
			loanPayments = loanPayments.Add(d.Amount.DivRound(twelve, 2))
		}
	}

	monthlyDebtPayments := creditPayments.Add(loanPayments)

	dtiRatio := decimal.Zero
	if monthlyIncome.IsPositive() {
		dtiRatio = monthlyDebtPayments.DivRound(monthlyIncome, 4).Mul(hundred)
	}

	return DebtResult{
		MonthlyIncome:       monthlyIncome,
		MonthlyDebtPayments: monthlyDebtPayments,
		DtiRatio:            dtiRatio,
		RiskLevel:           RateDebt(dtiRatio),
	}
}

// RateDebt buckets a debt-to-income percentage into a risk level.
func RateDebt(dtiRatio decimal.Decimal) DebtRiskLevel {
	switch {
	case dtiRatio.LessThan(decimal.NewFromInt(20)):
		return DebtExcellent
	case dtiRatio.LessThan(decimal.NewFromInt(30)):
		return DebtGood
	case dtiRatio.LessThan(decimal.NewFromInt(40)):
		return DebtModerate
	case dtiRatio.LessThan(decimal.NewFromInt(50)):
		return DebtHigh
	default:
		return DebtCritical
	}
}

// annualReturn is the fixed nominal return assumed by the years-to-freedom
// simulation.
var annualReturn = decimal.NewFromFloat(0.10)

// maxMonths caps the years-to-freedom simulation at 100 years.
const maxMonths = 1200

// CalculateFinancialFreedom derives the FI number (25x annual expenses, the 4%
// rule), the progress toward it and the simulated years to reach it.
func CalculateFinancialFreedom(s *Snapshot) FreedomResult {
	monthlyExpenses := averageMonthlyTotal(s, models.EXPENSE, 12)
	annualExpenses := monthlyExpenses.Mul(twelve)
	fiNumber := annualExpenses.Mul(twentyFive)

	currentNetWorth := CalculateNetWorth(s).NetWorth

	progress := decimal.Zero
	if fiNumber.IsPositive() {
		progress = currentNetWorth.DivRound(fiNumber, 4).Mul(hundred)
	}

	monthlySavings := averageMonthlyTotal(s, models.INCOME, 3).Sub(averageMonthlyTotal(s, models.EXPENSE, 3))

	return FreedomResult{
		MonthlyExpenses: monthlyExpenses,
		AnnualExpenses:  annualExpenses,
		FiNumber:        fiNumber,
		CurrentNetWorth: currentNetWorth,
		ProgressPercent: progress,
		YearsToFreedom:  YearsToFreedom(currentNetWorth, fiNumber, monthlySavings, annualReturn),
	}
}

// YearsToFreedom simulates monthly compounding of the current net worth plus
// monthly savings until the target is reached. It returns -1 when savings are
// non-positive (unreachable), 0 when the target is already met, and otherwise
// months/12 rounded to one decimal, capped at 100 years.
func YearsToFreedom(current, target, monthlySavings, annualReturn decimal.Decimal) decimal.Decimal {
	if monthlySavings.Sign() <= 0 {
		return decimal.NewFromInt(-1)
	}
	if current.GreaterThanOrEqual(target) {
		return decimal.Zero
	}

	monthlyRate := annualReturn.DivRound(twelve, 6)
	growth := decimal.NewFromInt(1).Add(monthlyRate)
	balance := current
	months := 0
	for balance.LessThan(target) && months < maxMonths {
		balance = balance.Mul(growth).Add(monthlySavings)
		months++
	}

	return decimal.NewFromInt(int64(months)).DivRound(twelve, 1)
}

// percentage returns amount/total*100 at 4 decimal places, or 0 when total is 0.
func percentage(amount, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return amount.DivRound(total, 4).Mul(hundred)
}

// averageMonthlyTotal averages the given transaction type over the trailing
// number of months, rounded to 2 decimals.
func averageMonthlyTotal(s *Snapshot, txType models.TransactionType, months int) decimal.Decimal {
	cutoff := s.Now.AddDate(0, -months, 0)
	total := decimal.Zero
	for _, t := range s.transactionsSince(cutoff, txType) {
		total = total.Add(t.Amount)
	}
	return total.DivRound(decimal.NewFromInt(int64(months)), 2)
}
