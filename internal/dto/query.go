package dto

import (
	"fmt"
	"strconv"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FieldError reports a query or body field that could not be parsed.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func parseOptionalUUID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, &FieldError{Field: field, Message: "must be a valid UUID"}
	}
	return &id, nil
}

func parseOptionalDate(field, value string) (*models.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := models.ParseDate(value)
	if err != nil {
		return nil, &FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"}
	}
	return &d, nil
}

func parseOptionalDecimal(field, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, &FieldError{Field: field, Message: "must be a decimal number"}
	}
	return &d, nil
}

func parseOptionalInt(field, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, &FieldError{Field: field, Message: "must be an integer"}
	}
	return &n, nil
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(models.AmountScale)
}
