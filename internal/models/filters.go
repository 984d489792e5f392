package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryFilters narrows a category listing. Name matches as a
// case-insensitive substring.
type CategoryFilters struct {
	Name string
	Type string
}

// TransactionFilters contains filtering options for transaction queries.
// Date bounds are inclusive; TransactionType filters on the category type.
type TransactionFilters struct {
	StartDate       *Date
	EndDate         *Date
	CategoryID      *uuid.UUID
	MinAmount       *decimal.Decimal
	MaxAmount       *decimal.Decimal
	TransactionType string
}

type BudgetFilters struct {
	CategoryID *uuid.UUID
	Month      string
	Year       *int
}
