package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthInvalidRefresh     ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_007"
)

// Conflict error codes (CONFLICT_*). Reported as 400 like the other input
// problems.
const (
	ConflictUsername ErrorCode = "CONFLICT_001"
	ConflictEmail    ErrorCode = "CONFLICT_002"
	ConflictBudget   ErrorCode = "CONFLICT_003"
)

// Not-found codes. Records owned by another user use these too.
const (
	CategoryNotFound    ErrorCode = "CATEGORY_001"
	TransactionNotFound ErrorCode = "TRANSACTION_001"
	BudgetNotFound      ErrorCode = "BUDGET_001"
	ProfileNotFound     ErrorCode = "PROFILE_001"
	RouteNotFound       ErrorCode = "ROUTE_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

type codeInfo struct {
	status  int
	message string
}

var registry = map[ErrorCode]codeInfo{
	AuthInvalidCredentials: {http.StatusBadRequest, "Invalid Credentials"},
	AuthMissingToken:       {http.StatusUnauthorized, "Authorization token is required"},
	AuthExpiredToken:       {http.StatusUnauthorized, "Authorization token has expired"},
	AuthInvalidTokenFormat: {http.StatusUnauthorized, "Invalid authorization token format"},
	AuthInvalidRefresh:     {http.StatusUnauthorized, "Refresh token is invalid or has been revoked"},

	ValidationGeneral:       {http.StatusBadRequest, "Validation failed"},
	ValidationRequiredField: {http.StatusBadRequest, "Required field is missing"},
	ValidationInvalidFormat: {http.StatusBadRequest, "Invalid field format"},
	ValidationOutOfRange:    {http.StatusBadRequest, "Field value is out of allowed range"},
	ValidationInvalidEmail:  {http.StatusBadRequest, "Invalid email address format"},
	ValidationInvalidDate:   {http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD"},
	ValidationInvalidMonth:  {http.StatusBadRequest, "Invalid month format. Use YYYY-MM"},

	ConflictUsername: {http.StatusBadRequest, "Username already exists"},
	ConflictEmail:    {http.StatusBadRequest, "Email already exists"},
	ConflictBudget:   {http.StatusBadRequest, "A budget for this category and month already exists"},

	CategoryNotFound:    {http.StatusNotFound, "Category not found"},
	TransactionNotFound: {http.StatusNotFound, "Transaction not found"},
	BudgetNotFound:      {http.StatusNotFound, "Budget not found"},
	ProfileNotFound:     {http.StatusNotFound, "Profile not found"},
	RouteNotFound:       {http.StatusNotFound, "Resource not found"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemDatabaseError:      {http.StatusInternalServerError, "Database connection error"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
}

// GetErrorMessage returns the default message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if info, ok := registry[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the HTTP status for code. Unknown codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := registry[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := registry[code]
	return ok
}
