package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrendMonths is the number of months covered by a summary's monthly trend.
const TrendMonths = 6

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start Date
	End   Date
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start.Time) && !d.After(r.End.Time)
}

// EndExclusive is the first day after the range, for half-open queries.
func (r DateRange) EndExclusive() Date {
	return r.End.AddDays(1)
}

// CategoryTotal is the sum of transaction amounts for one category.
type CategoryTotal struct {
	CategoryID uuid.UUID
	Total      decimal.Decimal
}

// TypeTotals holds income and expense sums over some date window.
type TypeTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Summary is the aggregate view of a user's finances over a date range.
type Summary struct {
	Range              DateRange
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetBalance         decimal.Decimal
	ExpensesByCategory []CategoryExpense
	MonthlyTrend       []MonthlyTrendItem
}

type CategoryExpense struct {
	CategoryID   uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
}

type MonthlyTrendItem struct {
	Month    YearMonth
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// ComparisonRow is one expense category's budget against its actual spend
// for a month.
type ComparisonRow struct {
	CategoryID   uuid.UUID
	CategoryName string
	BudgetAmount decimal.Decimal
	ActualAmount decimal.Decimal
	Difference   decimal.Decimal
	Period       YearMonth
}

// SampleDataResult describes what a sample data run inserted.
type SampleDataResult struct {
	CategoriesCreated   int
	TransactionsCreated int
	Range               DateRange
}
