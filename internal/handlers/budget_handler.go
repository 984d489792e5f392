package handlers

import (
	"net/http"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler serves /api/budgets
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// ListBudgets filters on category, month ("01".."12") and year.
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var q dto.BudgetQuery
	if err := c.Bind(&q); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(q); err != nil {
		return err
	}

	filters, err := q.Filters()
	if err != nil {
		return handleServiceError(c, err)
	}

	budgets, err := h.budgetService.List(c.Request().Context(), userID, filters)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetListResponse(budgets))
}

// CreateBudget fails with CONFLICT_003 when the category already has a budget
// for that month.
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.BudgetRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	in, err := req.Input()
	if err != nil {
		return handleServiceError(c, err)
	}

	budget, err := h.budgetService.Create(c.Request().Context(), userID, in)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewBudgetResponse(budget))
}

func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.BudgetNotFound)
	}

	budget, err := h.budgetService.Get(c.Request().Context(), userID, id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	var req dto.BudgetRequest
	return h.update(c, &req, func() error { return c.Validate(req) }, func() (dto.BudgetInput, error) { return req.Input() })
}

func (h *BudgetHandler) PatchBudget(c echo.Context) error {
	var req dto.BudgetPatchRequest
	return h.update(c, &req, func() error { return c.Validate(req) }, func() (dto.BudgetInput, error) { return req.Input() })
}

func (h *BudgetHandler) update(
	c echo.Context,
	req interface{},
	validate func() error,
	input func() (dto.BudgetInput, error),
) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.BudgetNotFound)
	}

	if err := c.Bind(req); err != nil {
		return sendInvalidBody(c)
	}
	if err := validate(); err != nil {
		return err
	}

	in, err := input()
	if err != nil {
		return handleServiceError(c, err)
	}

	budget, err := h.budgetService.Update(c.Request().Context(), userID, id, in)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.BudgetNotFound)
	}

	if err := h.budgetService.Delete(c.Request().Context(), userID, id); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
