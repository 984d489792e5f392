package dto

import (
	"budget-tracker/internal/models"

	"github.com/google/uuid"
)

// SummaryQuery holds the optional summary bounds. Each bound is parsed on its
// own; an omitted bound takes its default.
type SummaryQuery struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

type ComparisonQuery struct {
	Month string `query:"month"`
}

type SummaryResponse struct {
	StartDate          models.Date               `json:"start_date"`
	EndDate            models.Date               `json:"end_date"`
	TotalIncome        string                    `json:"total_income"`
	TotalExpenses      string                    `json:"total_expenses"`
	NetBalance         string                    `json:"net_balance"`
	ExpensesByCategory []CategoryExpenseResponse `json:"expenses_by_category"`
	MonthlyTrend       []MonthlyTrendResponse    `json:"monthly_trend"`
}

type CategoryExpenseResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

type MonthlyTrendResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

func NewSummaryResponse(s *models.Summary) SummaryResponse {
	resp := SummaryResponse{
		StartDate:          s.Range.Start,
		EndDate:            s.Range.End,
		TotalIncome:        formatAmount(s.TotalIncome),
		TotalExpenses:      formatAmount(s.TotalExpenses),
		NetBalance:         formatAmount(s.NetBalance),
		ExpensesByCategory: make([]CategoryExpenseResponse, 0, len(s.ExpensesByCategory)),
		MonthlyTrend:       make([]MonthlyTrendResponse, 0, len(s.MonthlyTrend)),
	}
	for _, e := range s.ExpensesByCategory {
		resp.ExpensesByCategory = append(resp.ExpensesByCategory, CategoryExpenseResponse{
			Category: e.CategoryName,
			Amount:   formatAmount(e.Amount),
		})
	}
	for _, m := range s.MonthlyTrend {
		resp.MonthlyTrend = append(resp.MonthlyTrend, MonthlyTrendResponse{
			Month:    m.Month.String(),
			Income:   formatAmount(m.Income),
			Expenses: formatAmount(m.Expenses),
		})
	}
	return resp
}

type ComparisonRowResponse struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	BudgetAmount string    `json:"budget_amount"`
	ActualAmount string    `json:"actual_amount"`
	Difference   string    `json:"difference"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
}

func NewComparisonResponse(rows []models.ComparisonRow) []ComparisonRowResponse {
	out := make([]ComparisonRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ComparisonRowResponse{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			BudgetAmount: formatAmount(row.BudgetAmount),
			ActualAmount: formatAmount(row.ActualAmount),
			Difference:   formatAmount(row.Difference),
			Year:         row.Period.Year,
			Month:        int(row.Period.Month),
		})
	}
	return out
}
