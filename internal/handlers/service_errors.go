package handlers

import (
	"errors"

	"budget-tracker/internal/dto"
	apierrors "budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// sentinelCodes maps service sentinels to the error code reported to clients.
var sentinelCodes = []struct {
	err  error
	code apierrors.ErrorCode
}{
	{services.ErrCategoryNotFound, apierrors.CategoryNotFound},
	{services.ErrTransactionNotFound, apierrors.TransactionNotFound},
	{services.ErrBudgetNotFound, apierrors.BudgetNotFound},
	{services.ErrProfileNotFound, apierrors.ProfileNotFound},
	{services.ErrBudgetExists, apierrors.ConflictBudget},
	{services.ErrUsernameExists, apierrors.ConflictUsername},
	{services.ErrEmailExists, apierrors.ConflictEmail},
	{services.ErrInvalidCredentials, apierrors.AuthInvalidCredentials},
	{services.ErrInvalidRefreshToken, apierrors.AuthInvalidRefresh},
	{services.ErrInvalidDate, apierrors.ValidationInvalidDate},
	{services.ErrInvalidMonth, apierrors.ValidationInvalidMonth},
	{services.ErrInvalidRange, apierrors.ValidationOutOfRange},
}

// handleServiceError translates an error returned by a service into the
// standardized response. Anything unrecognised is reported as a system error.
func handleServiceError(c echo.Context, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(validationErr.Error()))
	}

	var fieldErr *dto.FieldError
	if errors.As(err, &fieldErr) {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(fieldErr.Error()))
	}

	for _, s := range sentinelCodes {
		if errors.Is(err, s.err) {
			return SendError(c, s.code)
		}
	}

	return SendSystemError(c, err)
}

func sendInvalidBody(c echo.Context) error {
	return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
}
