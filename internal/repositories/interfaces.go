package repositories

import (
	"context"
	"time"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
)

// Every method that reads or writes user-owned data takes the owner's ID.
// A record that exists but belongs to someone else is reported exactly like
// a missing record.

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context, ownerID uuid.UUID, filters models.CategoryFilters) ([]models.Category, error)
	Update(ctx context.Context, ownerID uuid.UUID, category *models.Category) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, ownerID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error)
	Update(ctx context.Context, ownerID uuid.UUID, transaction *models.Transaction) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// SumByCategory totals amounts per category for dates in [start, endExclusive).
	SumByCategory(ctx context.Context, ownerID uuid.UUID, start, endExclusive models.Date) ([]models.CategoryTotal, error)
	// SumByType totals income and expense amounts for dates in [start, endExclusive).
	SumByType(ctx context.Context, ownerID uuid.UUID, start, endExclusive models.Date) (models.TypeTotals, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Budget, error)
	List(ctx context.Context, ownerID uuid.UUID, filters models.BudgetFilters) ([]models.Budget, error)
	Update(ctx context.Context, ownerID uuid.UUID, budget *models.Budget) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.UserProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateIdentity(ctx context.Context, userID uuid.UUID, username, email string) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

// ProfileRepositoryInterface defines the contract for user profile operations
type ProfileRepositoryInterface interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}

type RefreshTokenRepositoryInterface interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, tokenID uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(ctx context.Context, token *models.BlacklistedToken) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
