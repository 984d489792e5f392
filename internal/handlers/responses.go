package handlers

import (
	"log/slog"
	"net/http"

	"budget-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through two helpers only:
//
//   - SendError for anything the client can act on. The code decides the
//     status: SendError(c, errors.BudgetNotFound), or with details,
//     SendError(c, errors.ValidationGeneral, errors.WithDetails("month: ...")).
//   - SendSystemError for repository and other unexpected failures. The client
//     gets SYSTEM_001 and the trace ID; the cause goes to the log.
//
// Validator errors are returned as-is and rendered by the echo error handler.

// TraceIDContextKey is where the request ID middleware stores the trace ID.
const TraceIDContextKey = "trace_id"

// SuccessResponse is the envelope for message-only responses such as logout
// and the placeholder endpoints. Records are returned bare.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the error body for code with the request's trace ID.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	body := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(body.GetHTTPStatus(), body)
}

// SendSystemError logs err and answers with a detail-free SYSTEM_001.
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)

	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err,
	)

	return c.JSON(http.StatusInternalServerError, errors.NewInternalError(traceID))
}
