package repositories

import (
	"context"
	"fmt"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &ProfileRepository{db: db}
}

// GetOrCreate returns the user's profile, creating it with today's date as
// member-since when it does not exist yet.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	db := r.db.WithContext(ctx)
	err := db.Where(models.UserProfile{UserID: userID}).FirstOrCreate(&profile).Error
	if err != nil && isDuplicateKeyError(err) {
		// lost a race with a concurrent first read
		profile = models.UserProfile{}
		err = db.Where("user_id = ?", userID).First(&profile).Error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get or create profile: %w", err)
	}
	return &profile, nil
}
