package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) HealthCheck(context.Context) error {
	return s.err
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()

	t.Run("healthy", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/health", nil)

		assert.NoError(t, NewHealthCheckHandler(stubHealthChecker{}).HealthCheck(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	})

	t.Run("database down", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/", nil)

		assert.NoError(t, NewHealthCheckHandler(stubHealthChecker{err: errors.New("refused")}).HealthCheck(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "SYSTEM_003", decodeErrorResponse(t, rec).Error.Code)
	})
}
