package health

import (
	"testing"
	"time"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func account(accountType models.AccountType, balance string) models.Account {
	return models.Account{Id: uuid.New(), Type: accountType, Balance: dec(balance)}
}

func expense(category, amount string, daysAgo int) models.Transaction {
	return models.Transaction{
		Id:       uuid.New(),
		Amount:   dec(amount),
		Category: category,
		Type:     models.EXPENSE,
		Date:     testNow.AddDate(0, 0, -daysAgo),
	}
}

func income(amount string, daysAgo int) models.Transaction {
	return models.Transaction{
		Id:     uuid.New(),
		Amount: dec(amount),
		Type:   models.INCOME,
		Date:   testNow.AddDate(0, 0, -daysAgo),
	}
}

func TestCalculateNetWorth(t *testing.T) {
	t.Run("Assets And Liabilities", func(t *testing.T) {
		s := &Snapshot{
			Now: testNow,
			Accounts: []models.Account{
				account(models.BANK, "1000"),
				account(models.CASH, "500"),
				account(models.CREDIT, "-200"),
			},
			Debts: []models.Debt{
				{Type: models.BORROW, Status: models.DebtActive, Amount: dec("300")},
				{Type: models.BORROW, Status: models.DebtPaid, Amount: dec("100")},
				{Type: models.LEND, Status: models.DebtActive, Amount: dec("50")},
			},
		}

		result := CalculateNetWorth(s)

		assert.True(t, result.TotalAssets.Equal(dec("1500")), "got %s", result.TotalAssets)
		assert.True(t, result.TotalLiabilities.Equal(dec("500")), "got %s", result.TotalLiabilities)
		assert.True(t, result.NetWorth.Equal(dec("1000")), "got %s", result.NetWorth)
		assert.Equal(t, NetWorthFair, result.Rating)
	})

	t.Run("Negative Net Worth Rates Poor", func(t *testing.T) {
		s := &Snapshot{
			Now:      testNow,
			Accounts: []models.Account{account(models.CREDIT, "-1000")},
		}

		result := CalculateNetWorth(s)

		assert.True(t, result.NetWorth.IsNegative())
		assert.Equal(t, NetWorthPoor, result.Rating)
	})
}

func TestRateNetWorth(t *testing.T) {
	assert.Equal(t, NetWorthPoor, RateNetWorth(dec("0"), dec("0.5")))
	assert.Equal(t, NetWorthPoor, RateNetWorth(dec("-10"), dec("0.5")))
	assert.Equal(t, NetWorthExcellent, RateNetWorth(dec("10"), dec("0.21")))
	assert.Equal(t, NetWorthGood, RateNetWorth(dec("10"), dec("0.20")))
	assert.Equal(t, NetWorthGood, RateNetWorth(dec("10"), dec("0.05")))
	assert.Equal(t, NetWorthFair, RateNetWorth(dec("10"), dec("0.04")))
}

func TestCalculateLiquidity(t *testing.T) {
	t.Run("Runway From Trailing Essentials", func(t *testing.T) {
		s := &Snapshot{
			Now: testNow,
			Accounts: []models.Account{
				account(models.CASH, "800"),
				account(models.BANK, "1000"),
				account(models.INVESTMENT, "9999"), // not liquid
			},
			Transactions: []models.Transaction{
				expense("Food", "300", 30),
				expense("Housing", "600", 60),
				expense("Entertainment", "100", 30), // not essential
				expense("Food", "900", 120),        // outside the window
			},
		}

		result := CalculateLiquidity(s)

		assert.True(t, result.LiquidAssets.Equal(dec("1800")), "got %s", result.LiquidAssets)
		assert.True(t, result.MonthlyEssentialExpenses.Equal(dec("300")), "got %s", result.MonthlyEssentialExpenses)
		assert.True(t, result.LiquidityMonths.Equal(dec("6")), "got %s", result.LiquidityMonths)
		assert.Equal(t, LiquidityVerySafe, result.SafetyLevel)
	})

	t.Run("No Essential Expenses Is Critical", func(t *testing.T) {
		s := &Snapshot{
			Now:      testNow,
			Accounts: []models.Account{account(models.CASH, "1000")},
		}

		result := CalculateLiquidity(s)

		assert.True(t, result.LiquidityMonths.IsZero())
		assert.Equal(t, LiquidityCritical, result.SafetyLevel)
	})
}

func TestRateLiquidity(t *testing.T) {
	assert.Equal(t, LiquidityExcellent, RateLiquidity(dec("12.01")))
	assert.Equal(t, LiquidityVerySafe, RateLiquidity(dec("12")))
	assert.Equal(t, LiquidityVerySafe, RateLiquidity(dec("6")))
	assert.Equal(t, LiquiditySafe, RateLiquidity(dec("3")))
	assert.Equal(t, LiquidityLow, RateLiquidity(dec("1")))
	assert.Equal(t, LiquidityCritical, RateLiquidity(dec("0.99")))
}

func TestCalculateBudgetRule(t *testing.T) {
	t.Run("Percentages Against Income", func(t *testing.T) {
		s := &Snapshot{
			Now: testNow,
			Transactions: []models.Transaction{
				income("1000", 10),
				expense("Food", "500", 10),
				expense("Shopping", "300", 10),
				expense("Education", "50", 10), // neither needs nor wants
				income("9999", 60),             // outside the window
			},
		}

		result := CalculateBudgetRule(s)

		assert.True(t, result.TotalIncome.Equal(dec("1000")), "got %s", result.TotalIncome)
		assert.True(t, result.NeedsPercent.Equal(dec("50")), "got %s", result.NeedsPercent)
		assert.True(t, result.WantsPercent.Equal(dec("30")), "got %s", result.WantsPercent)
		assert.True(t, result.SavingsAmount.Equal(dec("200")), "got %s", result.SavingsAmount)
		assert.True(t, result.SavingsPercent.Equal(dec("20")), "got %s", result.SavingsPercent)
		assert.Equal(t, BudgetExcellent, result.Compliance)
	})

	t.Run("Zero Income Rates Poor", func(t *testing.T) {
		s := &Snapshot{
			Now:          testNow,
			Transactions: []models.Transaction{expense("Food", "500", 10)},
		}

		result := CalculateBudgetRule(s)

		assert.True(t, result.NeedsPercent.IsZero())
		assert.Equal(t, BudgetPoor, result.Compliance)
	})

	t.Run("Overspending Yields Negative Savings", func(t *testing.T) {
		s := &Snapshot{
			Now: testNow,
			Transactions: []models.Transaction{
				income("1000", 5),
				expense("Housing", "900", 5),
				expense("Travel", "400", 5),
			},
		}

		result := CalculateBudgetRule(s)

		assert.True(t, result.SavingsAmount.Equal(dec("-300")), "got %s", result.SavingsAmount)
		assert.Equal(t, BudgetPoor, result.Compliance)
	})
}

func TestRateBudget(t *testing.T) {
	assert.Equal(t, BudgetExcellent, RateBudget(dec("50"), dec("30"), dec("20")))
	assert.Equal(t, BudgetGood, RateBudget(dec("60"), dec("25"), dec("15")))
	assert.Equal(t, BudgetFair, RateBudget(dec("70"), dec("20"), dec("10")))
	assert.Equal(t, BudgetPoor, RateBudget(dec("71"), dec("20"), dec("10")))
	assert.Equal(t, BudgetPoor, RateBudget(dec("50"), dec("45"), dec("5")))
}

func TestCalculateDebtToIncome(t *testing.T) {
	t.Run("Credit And Loan Payments", func(t *testing.T) {
		s := &Snapshot{
			Now: testNow,
			Accounts: []models.Account{
				account(models.CREDIT, "-5000"),
			},
			Debts: []models.Debt{
				{Type: models.BORROW, Status: models.DebtActive, Amount: dec("1200")},
			},
			Transactions: []models.Transaction{
				income("1500", 15),
				income("1500", 75),
			},
		}

		result := CalculateDebtToIncome(s)

		assert.True(t, result.MonthlyIncome.Equal(dec("1000")), "got %s", result.MonthlyIncome)
		// 3% of 5000 plus 1200/12
		assert.True(t, result.MonthlyDebtPayments.Equal(dec("250")), "got %s", result.MonthlyDebtPayments)
		assert.True(t, result.DtiRatio.Equal(dec("25")), "got %s", result.DtiRatio)
		assert.Equal(t, DebtGood, result.RiskLevel)
	})

	t.Run("Zero Income With Zero Debt Is Excellent", func(t *testing.T) {
		s := &Snapshot{Now: testNow}

		result := CalculateDebtToIncome(s)

		assert.True(t, result.DtiRatio.IsZero())
		assert.Equal(t, DebtExcellent, result.RiskLevel)
	})
}

func TestRateDebt(t *testing.T) {
	assert.Equal(t, DebtExcellent, RateDebt(dec("19.99")))
	assert.Equal(t, DebtGood, RateDebt(dec("20")))
	assert.Equal(t, DebtModerate, RateDebt(dec("30")))
	assert.Equal(t, DebtHigh, RateDebt(dec("40")))
	assert.Equal(t, DebtCritical, RateDebt(dec("50")))
}

func TestCalculateFinancialFreedom(t *testing.T) {
	s := &Snapshot{
		Now:      testNow,
		Accounts: []models.Account{account(models.BANK, "30000")},
		Transactions: []models.Transaction{
			// 12000 of expenses spread over the trailing year.
			expense("Housing", "6000", 100),
			expense("Food", "6000", 200),
			income("2000", 15),
			income("2000", 45),
			income("2000", 75),
		},
	}

	result := CalculateFinancialFreedom(s)

	assert.True(t, result.MonthlyExpenses.Equal(dec("1000")), "got %s", result.MonthlyExpenses)
	assert.True(t, result.AnnualExpenses.Equal(dec("12000")), "got %s", result.AnnualExpenses)
	assert.True(t, result.FiNumber.Equal(dec("300000")), "got %s", result.FiNumber)
	assert.True(t, result.ProgressPercent.Equal(dec("10")), "got %s", result.ProgressPercent)
	assert.True(t, result.YearsToFreedom.IsPositive(), "got %s", result.YearsToFreedom)
}

func TestYearsToFreedom(t *testing.T) {
	t.Run("Unreachable Without Savings", func(t *testing.T) {
		result := YearsToFreedom(dec("0"), dec("100000"), dec("0"), dec("0.10"))
		assert.True(t, result.Equal(dec("-1")), "got %s", result)

		result = YearsToFreedom(dec("0"), dec("100000"), dec("-50"), dec("0.10"))
		assert.True(t, result.Equal(dec("-1")), "got %s", result)
	})

	t.Run("Already Reached", func(t *testing.T) {
		result := YearsToFreedom(dec("100000"), dec("100000"), dec("500"), dec("0.10"))
		assert.True(t, result.IsZero(), "got %s", result)
	})

	t.Run("Compounds Monthly", func(t *testing.T) {
		// No return: 12 deposits of 1 reach a target of 12 in exactly a year.
		result := YearsToFreedom(dec("0"), dec("12"), dec("1"), dec("0"))
		assert.True(t, result.Equal(dec("1")), "got %s", result)
	})

	t.Run("Capped At A Century", func(t *testing.T) {
		result := YearsToFreedom(dec("0"), dec("100000000000"), dec("0.01"), dec("0"))
		assert.True(t, result.Equal(dec("100")), "got %s", result)
	})
}

func TestSpendingByCategory(t *testing.T) {
	s := &Snapshot{
		Now: testNow,
		Transactions: []models.Transaction{
			expense("Food", "100", 5),
			expense("Food", "50", 10),
			expense("Travel", "200", 5),
			income("1000", 5),
		},
	}

	byCategory := SpendingByCategory(s)

	assert.Len(t, byCategory, 2)
	assert.True(t, byCategory["Food"].Equal(dec("150")), "got %s", byCategory["Food"])
	assert.True(t, byCategory["Travel"].Equal(dec("200")), "got %s", byCategory["Travel"])
}

func TestSpendingSuggestion(t *testing.T) {
	high := &Snapshot{Now: testNow, Transactions: []models.Transaction{expense("Food", "5000001", 5)}}
	assert.Contains(t, SpendingSuggestion(high), "Dining expense is high")

	low := &Snapshot{Now: testNow, Transactions: []models.Transaction{expense("Food", "100", 5)}}
	assert.Contains(t, SpendingSuggestion(low), "stable")
}
