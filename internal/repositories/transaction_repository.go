package repositories

import (
	"context"
	"errors"
	"fmt"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// TransactionRepository handles database operations for transactions
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}
	if transaction.UserID == uuid.Nil {
		return errors.New("transaction owner is required")
	}

	if err := r.db.WithContext(ctx).Omit("Category", "User").Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.WithContext(ctx).Preload("Category").
		Scopes(ownedBy(ownerID)).
		Where("id = ?", id).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ID: %w", err)
	}
	return &transaction, nil
}

// List returns the owner's transactions, newest date first.
func (r *TransactionRepository) List(ctx context.Context, ownerID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Preload("Category").
		Scopes(ownedBy(ownerID))

	if filters.StartDate != nil {
		query = query.Where("transactions.date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("transactions.date <= ?", *filters.EndDate)
	}
	if filters.CategoryID != nil {
		query = query.Where("transactions.category_id = ?", *filters.CategoryID)
	}
	if filters.MinAmount != nil {
		query = query.Where("transactions.amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("transactions.amount <= ?", *filters.MaxAmount)
	}
	if filters.TransactionType != "" {
		query = query.Joins("JOIN categories ON categories.id = transactions.category_id").
			Where("categories.type = ?", filters.TransactionType)
	}

	var transactions []models.Transaction
	err := query.Order("transactions.date DESC").
		Order("transactions.created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *TransactionRepository) Update(ctx context.Context, ownerID uuid.UUID, transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	result := r.db.WithContext(ctx).Model(transaction).Scopes(ownedBy(ownerID)).
		Select("category_id", "amount", "description", "date", "updated_at").
		Updates(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(ownedBy(ownerID)).Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) SumByCategory(ctx context.Context, ownerID uuid.UUID, start, endExclusive models.Date) ([]models.CategoryTotal, error) {
	var rows []models.CategoryTotal
	err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("category_id, COALESCE(SUM(amount), 0) AS total").
		Scopes(ownedBy(ownerID), inDateWindow(start, endExclusive)).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions by category: %w", err)
	}

	for i := range rows {
		rows[i].Total = rows[i].Total.Round(models.AmountScale)
	}
	return rows, nil
}

func (r *TransactionRepository) SumByType(ctx context.Context, ownerID uuid.UUID, start, endExclusive models.Date) (models.TypeTotals, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Table("transactions").
		Select("categories.type AS type, COALESCE(SUM(transactions.amount), 0) AS total").
		Joins("JOIN categories ON categories.id = transactions.category_id AND categories.user_id = transactions.user_id").
		Scopes(ownedBy(ownerID), inDateWindow(start, endExclusive)).
		Group("categories.type").
		Scan(&rows).Error
	if err != nil {
		return models.TypeTotals{}, fmt.Errorf("failed to sum transactions by type: %w", err)
	}

	totals := models.TypeTotals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, row := range rows {
		switch row.Type {
		case models.CategoryTypeIncome:
			totals.Income = row.Total.Round(models.AmountScale)
		case models.CategoryTypeExpense:
			totals.Expenses = row.Total.Round(models.AmountScale)
		}
	}
	return totals, nil
}
