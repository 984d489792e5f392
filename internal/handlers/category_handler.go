package handlers

import (
	"net/http"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves /api/categories
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories returns the caller's categories ordered by name.
// Query: name (case-insensitive substring), type (income|expense)
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var q dto.CategoryQuery
	if err := c.Bind(&q); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(q); err != nil {
		return err
	}

	categories, err := h.categoryService.List(c.Request().Context(), userID, q.Filters())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(c.Request().Context(), userID, req.Input())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.CategoryNotFound)
	}

	category, err := h.categoryService.Get(c.Request().Context(), userID, id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// UpdateCategory replaces name and type (PUT).
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	return h.update(c, &req, func() error { return c.Validate(req) }, func() dto.CategoryInput { return req.Input() })
}

// PatchCategory changes only the supplied fields (PATCH).
func (h *CategoryHandler) PatchCategory(c echo.Context) error {
	var req dto.CategoryPatchRequest
	return h.update(c, &req, func() error { return c.Validate(req) }, func() dto.CategoryInput { return req.Input() })
}

func (h *CategoryHandler) update(c echo.Context, req interface{}, validate func() error, input func() dto.CategoryInput) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.CategoryNotFound)
	}

	if err := c.Bind(req); err != nil {
		return sendInvalidBody(c)
	}
	if err := validate(); err != nil {
		return err
	}

	category, err := h.categoryService.Update(c.Request().Context(), userID, id, input())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// DeleteCategory removes the category together with its transactions and budgets.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.CategoryNotFound)
	}

	if err := h.categoryService.Delete(c.Request().Context(), userID, id); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
