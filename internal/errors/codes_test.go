package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		code     ErrorCode
		expected string
	}{
		{AuthInvalidCredentials, "Invalid Credentials"},
		{AuthMissingToken, "Authorization token is required"},
		{ValidationInvalidDate, "Invalid date format. Use YYYY-MM-DD"},
		{ValidationInvalidMonth, "Invalid month format. Use YYYY-MM"},
		{ConflictUsername, "Username already exists"},
		{ConflictEmail, "Email already exists"},
		{CategoryNotFound, "Category not found"},
		{SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for code := range registry {
		s.True(IsValidErrorCode(code), string(code))
	}
	s.False(IsValidErrorCode("CUSTOMER_001"))
	s.False(IsValidErrorCode(""))
}

func (s *CodesTestSuite) TestEveryCodeHasStatusAndMessage() {
	for code, info := range registry {
		s.NotEmpty(info.message, string(code))
		s.NotZero(GetHTTPStatus(code), string(code))
	}
}
