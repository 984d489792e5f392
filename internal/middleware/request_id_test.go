package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// run passes a request through RequestID and returns the trace IDs seen by
// the handler in the echo context and in the request context.
func (s *RequestIDTestSuite) run(incoming string) (echoID, ctxID string, rec *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec = httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		echoID = GetTraceID(c)
		ctxID = services.TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	return echoID, ctxID, rec
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesUUID() {
	echoID, ctxID, rec := s.run("")

	s.Regexp(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, echoID)
	s.Equal(echoID, ctxID)
	s.Equal(echoID, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_UsesIncomingHeader() {
	echoID, ctxID, rec := s.run("existing-trace-id-12345")

	s.Equal("existing-trace-id-12345", echoID)
	s.Equal("existing-trace-id-12345", ctxID)
	s.Equal("existing-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_ReplacesOversizedHeader() {
	echoID, _, _ := s.run(strings.Repeat("x", 500))

	s.Len(echoID, 36)
}

func (s *RequestIDTestSuite) TestRequestID_UniquePerRequest() {
	first, _, _ := s.run("")
	second, _, _ := s.run("")

	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceID_EmptyWhenNotSet() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	s.Empty(GetTraceID(c))
}
