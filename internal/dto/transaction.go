package dto

import (
	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the body of a create or full update. Date defaults
// to today on create.
type TransactionRequest struct {
	Category    string           `json:"category" validate:"required,uuid"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,positive_amount,money_amount"`
	Description string           `json:"description" validate:"max=255"`
	Date        string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// TransactionPatchRequest is the body of a partial update.
type TransactionPatchRequest struct {
	Category    *string          `json:"category" validate:"omitempty,uuid"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,positive_amount,money_amount"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// TransactionInput carries the transaction fields being written. Nil fields
// are left unchanged on update.
type TransactionInput struct {
	CategoryID  *uuid.UUID
	Amount      *decimal.Decimal
	Description *string
	Date        *models.Date
}

func (r TransactionRequest) Input() (TransactionInput, error) {
	categoryID, err := parseOptionalUUID("category", r.Category)
	if err != nil {
		return TransactionInput{}, err
	}
	date, err := parseOptionalDate("date", r.Date)
	if err != nil {
		return TransactionInput{}, err
	}
	description := r.Description
	return TransactionInput{CategoryID: categoryID, Amount: r.Amount, Description: &description, Date: date}, nil
}

func (r TransactionPatchRequest) Input() (TransactionInput, error) {
	in := TransactionInput{Amount: r.Amount, Description: r.Description}
	if r.Category != nil {
		categoryID, err := parseOptionalUUID("category", *r.Category)
		if err != nil {
			return TransactionInput{}, err
		}
		in.CategoryID = categoryID
	}
	if r.Date != nil {
		date, err := parseOptionalDate("date", *r.Date)
		if err != nil {
			return TransactionInput{}, err
		}
		in.Date = date
	}
	return in, nil
}

// TransactionQuery holds the list filters accepted on GET /transactions.
type TransactionQuery struct {
	StartDate       string `query:"start_date"`
	EndDate         string `query:"end_date"`
	Category        string `query:"category"`
	MinAmount       string `query:"min_amount"`
	MaxAmount       string `query:"max_amount"`
	TransactionType string `query:"transaction_type" validate:"omitempty,category_type"`
}

func (q TransactionQuery) Filters() (models.TransactionFilters, error) {
	var (
		filters models.TransactionFilters
		err     error
	)
	if filters.StartDate, err = parseOptionalDate("start_date", q.StartDate); err != nil {
		return filters, err
	}
	if filters.EndDate, err = parseOptionalDate("end_date", q.EndDate); err != nil {
		return filters, err
	}
	if filters.CategoryID, err = parseOptionalUUID("category", q.Category); err != nil {
		return filters, err
	}
	if filters.MinAmount, err = parseOptionalDecimal("min_amount", q.MinAmount); err != nil {
		return filters, err
	}
	if filters.MaxAmount, err = parseOptionalDecimal("max_amount", q.MaxAmount); err != nil {
		return filters, err
	}
	filters.TransactionType = q.TransactionType
	return filters, nil
}

type TransactionResponse struct {
	ID           uuid.UUID   `json:"id"`
	Amount       string      `json:"amount"`
	Category     uuid.UUID   `json:"category"`
	CategoryName string      `json:"category_name"`
	CategoryType string      `json:"category_type"`
	Description  string      `json:"description"`
	Date         models.Date `json:"date"`
}

func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Amount:       formatAmount(t.Amount),
		Category:     t.CategoryID,
		CategoryName: t.CategoryName(),
		CategoryType: t.CategoryType(),
		Description:  t.Description,
		Date:         t.Date,
	}
}

func NewTransactionListResponse(transactions []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, NewTransactionResponse(&transactions[i]))
	}
	return out
}
