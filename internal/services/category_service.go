package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/google/uuid"
)

// CategoryService manages the caller's categories
type CategoryService struct {
	repo repositories.CategoryRepositoryInterface
	changeRecorder
}

func NewCategoryService(
	repo repositories.CategoryRepositoryInterface,
	audit AuditServiceInterface,
	activity ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
) CategoryServiceInterface {
	return &CategoryService{
		repo:           repo,
		changeRecorder: changeRecorder{audit: audit, activity: activity, metrics: metrics},
	}
}

func (s *CategoryService) Create(ctx context.Context, ownerID uuid.UUID, in dto.CategoryInput) (*models.Category, error) {
	category := &models.Category{UserID: ownerID}
	if in.Name == nil {
		return nil, newValidationError("name", models.ErrCategoryNameMissing.Error())
	}
	if in.Type == nil {
		return nil, newValidationError("type", models.ErrInvalidCategoryType.Error())
	}
	applyCategoryInput(category, in)

	if err := category.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", asValidationError(err))
	}

	s.record(ctx, ownerID, models.AuditResourceCategory, models.AuditActionCreate, category.ID)
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapCategoryError(err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, ownerID uuid.UUID, filters models.CategoryFilters) ([]models.Category, error) {
	if filters.Type != "" && !models.IsValidCategoryType(filters.Type) {
		return nil, newValidationError("type", models.ErrInvalidCategoryType.Error())
	}

	categories, err := s.repo.List(ctx, ownerID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Update applies the non-nil fields of in to the category.
func (s *CategoryService) Update(ctx context.Context, ownerID, id uuid.UUID, in dto.CategoryInput) (*models.Category, error) {
	category, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	applyCategoryInput(category, in)
	if err := category.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	if err := s.repo.Update(ctx, ownerID, category); err != nil {
		return nil, mapCategoryError(err)
	}

	s.record(ctx, ownerID, models.AuditResourceCategory, models.AuditActionUpdate, category.ID)
	return category, nil
}

// Delete removes the category along with its transactions and budgets.
func (s *CategoryService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return mapCategoryError(err)
	}

	s.record(ctx, ownerID, models.AuditResourceCategory, models.AuditActionDelete, id)
	return nil
}

func applyCategoryInput(category *models.Category, in dto.CategoryInput) {
	if in.Name != nil {
		category.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		category.Type = *in.Type
	}
}

func mapCategoryError(err error) error {
	if errors.Is(err, repositories.ErrCategoryNotFound) {
		return ErrCategoryNotFound
	}
	return fmt.Errorf("category repository: %w", asValidationError(err))
}
