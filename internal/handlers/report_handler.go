package handlers

import (
	"net/http"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the read-only reports
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary returns income, expenses, net balance, expenses per category and
// the six-month trend.
//
// Method: GET /api/summary
// Query: start_date, end_date (YYYY-MM-DD). Defaults to the current month up
// to today; a missing bound takes its own default.
func (h *ReportHandler) Summary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var q dto.SummaryQuery
	if err := c.Bind(&q); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	dateRange, err := h.reportService.ResolveRange(q.StartDate, q.EndDate)
	if err != nil {
		return handleServiceError(c, err)
	}

	summary, err := h.reportService.ComputeSummary(c.Request().Context(), userID, dateRange)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSummaryResponse(summary))
}

// BudgetComparison returns budget vs actual for every expense category.
//
// Method: GET /api/budget-comparison
// Query: month (YYYY-MM), defaults to the current month
func (h *ReportHandler) BudgetComparison(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var q dto.ComparisonQuery
	if err := c.Bind(&q); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	period, err := h.reportService.ResolveMonth(q.Month)
	if err != nil {
		return handleServiceError(c, err)
	}

	rows, err := h.reportService.ComputeBudgetComparison(c.Request().Context(), userID, period)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewComparisonResponse(rows))
}

// PredictExpenses is reserved for expense forecasting.
func (h *ReportHandler) PredictExpenses(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Expense prediction is not available yet"})
}

// GetRecords is reserved for record export.
func (h *ReportHandler) GetRecords(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Record export is not available yet"})
}
