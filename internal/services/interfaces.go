package services

import (
	"context"
	"time"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/models"

	"github.com/google/uuid"
)

// Every owner-scoped operation takes the caller's user ID. A record owned by
// someone else is reported exactly like a missing one.

// CategoryServiceInterface defines category business operations
type CategoryServiceInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, in dto.CategoryInput) (*models.Category, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context, ownerID uuid.UUID, filters models.CategoryFilters) ([]models.Category, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in dto.CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// TransactionServiceInterface defines transaction business operations
type TransactionServiceInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, in dto.TransactionInput) (*models.Transaction, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, ownerID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in dto.TransactionInput) (*models.Transaction, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// BudgetServiceInterface defines budget business operations
type BudgetServiceInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, in dto.BudgetInput) (*models.Budget, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Budget, error)
	List(ctx context.Context, ownerID uuid.UUID, filters models.BudgetFilters) ([]models.Budget, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in dto.BudgetInput) (*models.Budget, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// ReportServiceInterface computes the read-only financial reports
type ReportServiceInterface interface {
	// ResolveRange applies the summary defaults to optional YYYY-MM-DD bounds.
	ResolveRange(startDate, endDate string) (models.DateRange, error)
	// ResolveMonth parses an optional YYYY-MM value, defaulting to the current month.
	ResolveMonth(month string) (models.YearMonth, error)
	ComputeSummary(ctx context.Context, ownerID uuid.UUID, dateRange models.DateRange) (*models.Summary, error)
	ComputeBudgetComparison(ctx context.Context, ownerID uuid.UUID, period models.YearMonth) ([]models.ComparisonRow, error)
}

// ProfileServiceInterface defines profile operations for the caller's own account
type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, *models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest, ipAddress, userAgent string) (*models.User, *models.UserProfile, error)
}

// AuditServiceInterface records audit trail entries. Recording never fails
// the calling operation.
type AuditServiceInterface interface {
	LogSignup(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string)
	LogLogin(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string)
	LogFailedLogin(ctx context.Context, email, ipAddress, userAgent, reason string)
	LogLogout(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string)
	LogTokenRefresh(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string)
	LogProfileUpdate(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string, changes map[string]interface{})
	LogRecordChange(ctx context.Context, userID uuid.UUID, action, resource string, resourceID uuid.UUID)
	GetUserActivity(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}

// ActivityLoggerInterface emits structured log events for domain activity
type ActivityLoggerInterface interface {
	LogRecordChanged(ctx context.Context, userID uuid.UUID, resource, action string, resourceID uuid.UUID)
	LogReportComputed(ctx context.Context, userID uuid.UUID, report string, rows int, duration time.Duration)
	LogReportFailed(ctx context.Context, userID uuid.UUID, report string, err error)
	LogMaintenanceSweep(ctx context.Context, refreshTokens, blacklistedTokens, auditLogs int64)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuthServiceInterface interface {
	Signup(ctx context.Context, req *dto.SignupRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	RefreshTokens(ctx context.Context, refreshToken, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, accessToken, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// SampleDataServiceInterface seeds an account with generated history
type SampleDataServiceInterface interface {
	Generate(ctx context.Context, ownerID uuid.UUID, days, count int) (*models.SampleDataResult, error)
}

// MaintenanceServiceInterface purges expired tokens and aged audit rows
type MaintenanceServiceInterface interface {
	Sweep(ctx context.Context) error
	Start(ctx context.Context)
}
