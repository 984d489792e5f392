package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/google/uuid"
)

// TransactionService manages the caller's transactions
type TransactionService struct {
	repo         repositories.TransactionRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	changeRecorder
}

func NewTransactionService(
	repo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	audit AuditServiceInterface,
	activity ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &TransactionService{
		repo:           repo,
		categoryRepo:   categoryRepo,
		changeRecorder: changeRecorder{audit: audit, activity: activity, metrics: metrics},
	}
}

// Create records a transaction. The category must belong to the caller; the
// date defaults to today.
func (s *TransactionService) Create(ctx context.Context, ownerID uuid.UUID, in dto.TransactionInput) (*models.Transaction, error) {
	if in.CategoryID == nil {
		return nil, newValidationError("category", models.ErrCategoryRequired.Error())
	}
	if in.Amount == nil {
		return nil, newValidationError("amount", "amount is required")
	}

	transaction := &models.Transaction{UserID: ownerID}
	if err := s.apply(ctx, ownerID, transaction, in); err != nil {
		return nil, err
	}
	if transaction.Date.IsZero() {
		transaction.Date = models.DateOf(time.Now())
	}

	if err := transaction.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	if err := s.repo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", asValidationError(err))
	}

	s.record(ctx, ownerID, models.AuditResourceTransaction, models.AuditActionCreate, transaction.ID)
	return transaction, nil
}

func (s *TransactionService) Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapTransactionError(err)
	}
	return transaction, nil
}

// List returns the caller's transactions matching filters, newest first.
func (s *TransactionService) List(ctx context.Context, ownerID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error) {
	if filters.TransactionType != "" && !models.IsValidCategoryType(filters.TransactionType) {
		return nil, newValidationError("transaction_type", models.ErrInvalidCategoryType.Error())
	}

	transactions, err := s.repo.List(ctx, ownerID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Update applies the non-nil fields of in. An omitted date keeps the
// existing one.
func (s *TransactionService) Update(ctx context.Context, ownerID, id uuid.UUID, in dto.TransactionInput) (*models.Transaction, error) {
	transaction, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(ctx, ownerID, transaction, in); err != nil {
		return nil, err
	}
	if err := transaction.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	if err := s.repo.Update(ctx, ownerID, transaction); err != nil {
		return nil, mapTransactionError(err)
	}

	s.record(ctx, ownerID, models.AuditResourceTransaction, models.AuditActionUpdate, transaction.ID)
	return transaction, nil
}

func (s *TransactionService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return mapTransactionError(err)
	}

	s.record(ctx, ownerID, models.AuditResourceTransaction, models.AuditActionDelete, id)
	return nil
}

func (s *TransactionService) apply(ctx context.Context, ownerID uuid.UUID, transaction *models.Transaction, in dto.TransactionInput) error {
	if in.CategoryID != nil {
		category, err := ownedCategory(ctx, s.categoryRepo, ownerID, *in.CategoryID)
		if err != nil {
			return err
		}
		transaction.CategoryID = category.ID
		transaction.Category = category
	}
	if in.Amount != nil {
		transaction.Amount = *in.Amount
	}
	if in.Description != nil {
		transaction.Description = *in.Description
	}
	if in.Date != nil {
		transaction.Date = *in.Date
	}
	return nil
}

// ownedCategory loads a category the caller is writing against. A category
// of another user is rejected as a field error, not a 404 of the record.
func ownedCategory(ctx context.Context, repo repositories.CategoryRepositoryInterface, ownerID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := repo.GetByID(ctx, ownerID, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, errCategoryNotOwned
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	return category, nil
}

func mapTransactionError(err error) error {
	if errors.Is(err, repositories.ErrTransactionNotFound) {
		return ErrTransactionNotFound
	}
	return fmt.Errorf("transaction repository: %w", asValidationError(err))
}
