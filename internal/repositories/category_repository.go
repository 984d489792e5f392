package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}
	if category.UserID == uuid.Nil {
		return errors.New("category owner is required")
	}

	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Scopes(ownedBy(ownerID)).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}
	return &category, nil
}

// List returns the owner's categories ordered by name then ID.
func (r *CategoryRepository) List(ctx context.Context, ownerID uuid.UUID, filters models.CategoryFilters) ([]models.Category, error) {
	query := r.db.WithContext(ctx).Scopes(ownedBy(ownerID))

	if filters.Name != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filters.Name)) + "%"
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}

	var categories []models.Category
	if err := query.Order("name ASC").Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, ownerID uuid.UUID, category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	result := r.db.WithContext(ctx).Model(category).Scopes(ownedBy(ownerID)).
		Select("name", "type", "updated_at").
		Updates(category)
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category together with its transactions and budgets.
func (r *CategoryRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Scopes(ownedBy(ownerID)).Where("id = ?", id).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("failed to load category: %w", err)
		}

		if err := tx.Scopes(ownedBy(ownerID)).Where("category_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete category transactions: %w", err)
		}
		if err := tx.Scopes(ownedBy(ownerID)).Where("category_id = ?", id).Delete(&models.Budget{}).Error; err != nil {
			return fmt.Errorf("failed to delete category budgets: %w", err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
}
