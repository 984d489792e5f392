package dto

import (
	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetRequest is the body of a create or full update.
type BudgetRequest struct {
	Category string           `json:"category" validate:"required,uuid"`
	Amount   *decimal.Decimal `json:"amount" validate:"required,money_amount"`
	Month    string           `json:"month" validate:"required,month_string"`
	Year     int              `json:"year" validate:"required,budget_year"`
}

// BudgetPatchRequest is the body of a partial update.
type BudgetPatchRequest struct {
	Category *string          `json:"category" validate:"omitempty,uuid"`
	Amount   *decimal.Decimal `json:"amount" validate:"omitempty,money_amount"`
	Month    *string          `json:"month" validate:"omitempty,month_string"`
	Year     *int             `json:"year" validate:"omitempty,budget_year"`
}

// BudgetInput carries the budget fields being written. Nil fields are left
// unchanged on update.
type BudgetInput struct {
	CategoryID *uuid.UUID
	Amount     *decimal.Decimal
	Month      *string
	Year       *int
}

func (r BudgetRequest) Input() (BudgetInput, error) {
	categoryID, err := parseOptionalUUID("category", r.Category)
	if err != nil {
		return BudgetInput{}, err
	}
	return BudgetInput{CategoryID: categoryID, Amount: r.Amount, Month: &r.Month, Year: &r.Year}, nil
}

func (r BudgetPatchRequest) Input() (BudgetInput, error) {
	in := BudgetInput{Amount: r.Amount, Month: r.Month, Year: r.Year}
	if r.Category != nil {
		categoryID, err := parseOptionalUUID("category", *r.Category)
		if err != nil {
			return BudgetInput{}, err
		}
		in.CategoryID = categoryID
	}
	return in, nil
}

// BudgetQuery holds the list filters accepted on GET /budgets.
type BudgetQuery struct {
	Category string `query:"category"`
	Month    string `query:"month" validate:"omitempty,month_string"`
	Year     string `query:"year"`
}

func (q BudgetQuery) Filters() (models.BudgetFilters, error) {
	var (
		filters models.BudgetFilters
		err     error
	)
	if filters.CategoryID, err = parseOptionalUUID("category", q.Category); err != nil {
		return filters, err
	}
	if filters.Year, err = parseOptionalInt("year", q.Year); err != nil {
		return filters, err
	}
	filters.Month = q.Month
	return filters, nil
}

type BudgetResponse struct {
	ID           uuid.UUID `json:"id"`
	Category     uuid.UUID `json:"category"`
	CategoryName string    `json:"category_name"`
	Amount       string    `json:"amount"`
	Month        string    `json:"month"`
	Year         int       `json:"year"`
}

func NewBudgetResponse(b *models.Budget) BudgetResponse {
	return BudgetResponse{
		ID:           b.ID,
		Category:     b.CategoryID,
		CategoryName: b.CategoryName(),
		Amount:       formatAmount(b.Amount),
		Month:        b.Month,
		Year:         b.Year,
	}
}

func NewBudgetListResponse(budgets []models.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		out = append(out, NewBudgetResponse(&budgets[i]))
	}
	return out
}
