package services

import (
	"errors"
	"fmt"

	"budget-tracker/internal/models"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetExists        = errors.New("budget already exists for this category and month")
	ErrProfileNotFound     = errors.New("profile not found")

	ErrInvalidDate  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidMonth = errors.New("invalid month format, use YYYY-MM")
	ErrInvalidRange = errors.New("start_date must not be after end_date")
)

// ValidationError is a rejected field value. Handlers report it as a 400 with
// the field name in the details.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var errCategoryNotOwned = newValidationError("category", "not found")

// fieldErrors maps model validation sentinels to the request field they
// concern.
var fieldErrors = []struct {
	err   error
	field string
}{
	{models.ErrInvalidAmount, "amount"},
	{models.ErrNegativeAmount, "amount"},
	{models.ErrAmountPrecision, "amount"},
	{models.ErrAmountTooLarge, "amount"},
	{models.ErrDescriptionTooLong, "description"},
	{models.ErrCategoryRequired, "category"},
	{models.ErrTransactionDateZero, "date"},
	{models.ErrInvalidBudgetMonth, "month"},
	{models.ErrInvalidBudgetYear, "year"},
	{models.ErrInvalidCategoryType, "type"},
	{models.ErrCategoryNameMissing, "name"},
	{models.ErrCategoryNameTooLong, "name"},
	{models.ErrUsernameRequired, "username"},
	{models.ErrUsernameTooLong, "username"},
	{models.ErrUsernameInvalid, "username"},
	{models.ErrEmailRequired, "email"},
	{models.ErrEmailInvalid, "email"},
}

// asValidationError converts a model validation failure into a
// ValidationError. Other errors are returned unchanged.
func asValidationError(err error) error {
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return newValidationError(fe.field, fe.err.Error())
		}
	}
	return err
}
