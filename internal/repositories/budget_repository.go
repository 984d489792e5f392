package repositories

import (
	"context"
	"errors"
	"fmt"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category and month")
)

// BudgetRepository handles database operations for budgets
type BudgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &BudgetRepository{db: db}
}

// Create inserts a budget. The unique index on owner, category, month and
// year rejects a second budget for the same period.
func (r *BudgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}
	if budget.UserID == uuid.Nil {
		return errors.New("budget owner is required")
	}

	if err := r.db.WithContext(ctx).Omit("Category", "User").Create(budget).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrBudgetAlreadyExists
		}
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).Preload("Category").
		Scopes(ownedBy(ownerID)).
		Where("id = ?", id).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget by ID: %w", err)
	}
	return &budget, nil
}

func (r *BudgetRepository) List(ctx context.Context, ownerID uuid.UUID, filters models.BudgetFilters) ([]models.Budget, error) {
	query := r.db.WithContext(ctx).Preload("Category").Scopes(ownedBy(ownerID))

	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Month != "" {
		query = query.Where("month = ?", filters.Month)
	}
	if filters.Year != nil {
		query = query.Where("year = ?", *filters.Year)
	}

	var budgets []models.Budget
	if err := query.Order("year DESC").Order("month DESC").Order("id ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (r *BudgetRepository) Update(ctx context.Context, ownerID uuid.UUID, budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	result := r.db.WithContext(ctx).Model(budget).Scopes(ownedBy(ownerID)).
		Select("category_id", "amount", "month", "year", "updated_at").
		Updates(budget)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrBudgetAlreadyExists
		}
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(ownedBy(ownerID)).Where("id = ?", id).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
