package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "budget-tracker/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverFrom(t *testing.T, traceID string, h echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/summary", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	var err error
	require.NotPanics(t, func() {
		err = PanicRecovery()(h)(c)
	})
	return rec, err
}

func TestPanicRecovery(t *testing.T) {
	tests := []struct {
		name      string
		traceID   string
		panicWith interface{}
		wantTrace string
	}{
		{"string panic", "test-trace-id", "boom", "test-trace-id"},
		{"error panic", "test-trace-id", errors.New("nil map write"), "test-trace-id"},
		{"int panic", "test-trace-id", 42, "test-trace-id"},
		{"nil panic", "test-trace-id", nil, "test-trace-id"},
		{"no trace id", "", "boom", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := recoverFrom(t, tt.traceID, func(echo.Context) error {
				panic(tt.panicWith)
			})

			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body apierrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "SYSTEM_001", body.Error.Code)
			assert.Equal(t, tt.wantTrace, body.Error.TraceID)
		})
	}
}

func TestPanicRecovery_PassesThrough(t *testing.T) {
	sentinel := errors.New("handler error")

	rec, err := recoverFrom(t, "", func(c echo.Context) error {
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestPanicRecovery_AfterResponseCommitted(t *testing.T) {
	rec, err := recoverFrom(t, "", func(c echo.Context) error {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
		panic("late panic")
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "SYSTEM_001")
}
