package services

import (
	"testing"
	"time"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

func amountGen() *rapid.Generator[decimal.Decimal] {
	return rapid.Custom(func(t *rapid.T) decimal.Decimal {
		return decimal.New(rapid.Int64Range(0, 99_999_999_99).Draw(t, "cents"), -models.AmountScale)
	})
}

func categoriesGen() *rapid.Generator[[]models.Category] {
	return rapid.Custom(func(t *rapid.T) []models.Category {
		n := rapid.IntRange(0, 8).Draw(t, "categories")
		categories := make([]models.Category, n)
		for i := range categories {
			categories[i] = models.Category{
				ID:   uuid.New(),
				Name: rapid.StringMatching(`[A-Z][a-z]{2,10}`).Draw(t, "name"),
				Type: rapid.SampledFrom([]string{models.CategoryTypeIncome, models.CategoryTypeExpense}).Draw(t, "type"),
			}
		}
		return categories
	})
}

func totalsFor(t *rapid.T, categories []models.Category) []models.CategoryTotal {
	var totals []models.CategoryTotal
	for _, c := range categories {
		if rapid.Bool().Draw(t, "has_total") {
			totals = append(totals, models.CategoryTotal{CategoryID: c.ID, Total: amountGen().Draw(t, "total")})
		}
	}
	return totals
}

func TestSummarize_NetBalanceIsExact(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		categories := categoriesGen().Draw(t, "categories")
		summary := summarize(categories, totalsFor(t, categories))

		if !summary.TotalIncome.Sub(summary.TotalExpenses).Equal(summary.NetBalance) {
			t.Fatalf("income %s - expenses %s != net %s", summary.TotalIncome, summary.TotalExpenses, summary.NetBalance)
		}
	})
}

func TestSummarize_ExpensesByCategoryArePositive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		categories := categoriesGen().Draw(t, "categories")
		summary := summarize(categories, totalsFor(t, categories))

		sum := decimal.Zero
		for _, e := range summary.ExpensesByCategory {
			if !e.Amount.IsPositive() {
				t.Fatalf("category %s has non-positive amount %s", e.CategoryName, e.Amount)
			}
			sum = sum.Add(e.Amount)
		}
		if !sum.Equal(summary.TotalExpenses) {
			t.Fatalf("breakdown %s != total expenses %s", sum, summary.TotalExpenses)
		}
	})
}

func TestCompareBudgets_DifferenceIsBudgetMinusActual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		categories := categoriesGen().Draw(t, "categories")
		totals := totalsFor(t, categories)
		var budgets []models.Budget
		for _, c := range categories {
			if rapid.Bool().Draw(t, "has_budget") {
				budgets = append(budgets, models.Budget{CategoryID: c.ID, Amount: amountGen().Draw(t, "budget")})
			}
		}
		period := models.YearMonth{Year: 2024, Month: time.Month(rapid.IntRange(1, 12).Draw(t, "month"))}

		rows := compareBudgets(categories, budgets, totals, period)

		expenses := 0
		for _, c := range categories {
			if c.IsExpense() {
				expenses++
			}
		}
		if len(rows) != expenses {
			t.Fatalf("expected %d rows, got %d", expenses, len(rows))
		}
		for _, row := range rows {
			if !row.BudgetAmount.Sub(row.ActualAmount).Equal(row.Difference) {
				t.Fatalf("difference %s != %s - %s", row.Difference, row.BudgetAmount, row.ActualAmount)
			}
			if row.Period != period {
				t.Fatalf("row period %s, want %s", row.Period, period)
			}
		}
	})
}

func TestTrendMonths_SixAscendingEndingAtCurrent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		current := models.YearMonth{
			Year:  rapid.IntRange(1901, 9998).Draw(t, "year"),
			Month: time.Month(rapid.IntRange(1, 12).Draw(t, "month")),
		}

		trend := trendMonths(current)

		if len(trend) != models.TrendMonths {
			t.Fatalf("expected %d months, got %d", models.TrendMonths, len(trend))
		}
		if trend[len(trend)-1].Month != current {
			t.Fatalf("trend ends at %s, want %s", trend[len(trend)-1].Month, current)
		}
		for i := 1; i < len(trend); i++ {
			if trend[i-1].Month.AddMonths(1) != trend[i].Month {
				t.Fatalf("months %s and %s are not consecutive", trend[i-1].Month, trend[i].Month)
			}
		}
	})
}
