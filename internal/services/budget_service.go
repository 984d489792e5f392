package services

import (
	"context"
	"errors"
	"fmt"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/google/uuid"
)

// BudgetService manages the caller's monthly budgets
type BudgetService struct {
	repo         repositories.BudgetRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	changeRecorder
}

func NewBudgetService(
	repo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	audit AuditServiceInterface,
	activity ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &BudgetService{
		repo:           repo,
		categoryRepo:   categoryRepo,
		changeRecorder: changeRecorder{audit: audit, activity: activity, metrics: metrics},
	}
}

// Create adds a budget. A second budget for the same category, month and
// year returns ErrBudgetExists.
func (s *BudgetService) Create(ctx context.Context, ownerID uuid.UUID, in dto.BudgetInput) (*models.Budget, error) {
	switch {
	case in.CategoryID == nil:
		return nil, newValidationError("category", models.ErrCategoryRequired.Error())
	case in.Amount == nil:
		return nil, newValidationError("amount", "amount is required")
	case in.Month == nil:
		return nil, newValidationError("month", models.ErrInvalidBudgetMonth.Error())
	case in.Year == nil:
		return nil, newValidationError("year", models.ErrInvalidBudgetYear.Error())
	}

	budget := &models.Budget{UserID: ownerID}
	if err := s.apply(ctx, ownerID, budget, in); err != nil {
		return nil, err
	}

	if err := budget.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	if err := s.repo.Create(ctx, budget); err != nil {
		return nil, mapBudgetError(err)
	}

	s.record(ctx, ownerID, models.AuditResourceBudget, models.AuditActionCreate, budget.ID)
	return budget, nil
}

func (s *BudgetService) Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Budget, error) {
	budget, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapBudgetError(err)
	}
	return budget, nil
}

func (s *BudgetService) List(ctx context.Context, ownerID uuid.UUID, filters models.BudgetFilters) ([]models.Budget, error) {
	if filters.Month != "" && !models.IsValidBudgetMonth(filters.Month) {
		return nil, newValidationError("month", models.ErrInvalidBudgetMonth.Error())
	}

	budgets, err := s.repo.List(ctx, ownerID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (s *BudgetService) Update(ctx context.Context, ownerID, id uuid.UUID, in dto.BudgetInput) (*models.Budget, error) {
	budget, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(ctx, ownerID, budget, in); err != nil {
		return nil, err
	}
	if err := budget.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	if err := s.repo.Update(ctx, ownerID, budget); err != nil {
		return nil, mapBudgetError(err)
	}

	s.record(ctx, ownerID, models.AuditResourceBudget, models.AuditActionUpdate, budget.ID)
	return budget, nil
}

func (s *BudgetService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return mapBudgetError(err)
	}

	s.record(ctx, ownerID, models.AuditResourceBudget, models.AuditActionDelete, id)
	return nil
}

func (s *BudgetService) apply(ctx context.Context, ownerID uuid.UUID, budget *models.Budget, in dto.BudgetInput) error {
	if in.CategoryID != nil {
		category, err := ownedCategory(ctx, s.categoryRepo, ownerID, *in.CategoryID)
		if err != nil {
			return err
		}
		budget.CategoryID = category.ID
		budget.Category = category
	}
	if in.Amount != nil {
		budget.Amount = *in.Amount
	}
	if in.Month != nil {
		budget.Month = *in.Month
	}
	if in.Year != nil {
		budget.Year = *in.Year
	}
	return nil
}

func mapBudgetError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrBudgetNotFound):
		return ErrBudgetNotFound
	case errors.Is(err, repositories.ErrBudgetAlreadyExists):
		return ErrBudgetExists
	}
	return fmt.Errorf("budget repository: %w", asValidationError(err))
}
