package handlers

import (
	"net/http"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler serves /api/transactions
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions returns the caller's transactions, newest date first.
//
// Query parameters:
//   - start_date, end_date: inclusive YYYY-MM-DD bounds
//   - category: category UUID
//   - min_amount, max_amount: inclusive amount bounds
//   - transaction_type: income or expense, matched on the category type
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var q dto.TransactionQuery
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

	transactions, err := h.transactionService.List(c.Request().Context(), userID, filters)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// CreateTransaction records a transaction. The date defaults to today.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.TransactionRequest
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

	transaction, err := h.transactionService.Create(c.Request().Context(), userID, in)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.TransactionNotFound)
	}

	transaction, err := h.transactionService.Get(c.Request().Context(), userID, id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// UpdateTransaction handles PUT. An omitted date keeps the stored date.
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	var req dto.TransactionRequest
	return h.update(c, &req, func() error { return c.Validate(req) }, func() (dto.TransactionInput, error) { return req.Input() })
}

func (h *TransactionHandler) PatchTransaction(c echo.Context) error {
	var req dto.TransactionPatchRequest
	return h.update(c, &req, func() error { return c.Validate(req) }, func() (dto.TransactionInput, error) { return req.Input() })
}

func (h *TransactionHandler) update(
	c echo.Context,
	req interface{},
	validate func() error,
	input func() (dto.TransactionInput, error),
) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.TransactionNotFound)
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

	transaction, err := h.transactionService.Update(c.Request().Context(), userID, id, in)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, ok := getIDParam(c)
	if !ok {
		return SendError(c, errors.TransactionNotFound)
	}

	if err := h.transactionService.Delete(c.Request().Context(), userID, id); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
