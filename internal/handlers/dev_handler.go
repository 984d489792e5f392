package handlers

import (
	"net/http"

	"budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	sampleData services.SampleDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleData services.SampleDataServiceInterface) *DevHandler {
	return &DevHandler{sampleData: sampleData}
}

// GenerateSampleData fills the caller's account with generated history
//
// Method: POST /api/dev/sample-data
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - days: Number of days of history to generate (default: 90, max: 365)
//   - count: Number of purchases to generate (default: 100, max: 1000)
//
// Success Response: 200 OK
//   - message: Success message
//   - categories_created, transactions_created
//   - start_date, end_date
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	days := getIntParam(c, "days", services.DefaultSampleDays)
	count := getIntParam(c, "count", services.DefaultSampleCount)

	result, err := h.sampleData.Generate(c.Request().Context(), userID, days, count)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "sample data generated successfully",
		"categories_created":   result.CategoriesCreated,
		"transactions_created": result.TransactionsCreated,
		"start_date":           result.Range.Start,
		"end_date":             result.Range.End,
	})
}
