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

// ProfileService reads and edits the caller's own identity and profile
type ProfileService struct {
	userRepo     repositories.UserRepositoryInterface
	profileRepo  repositories.ProfileRepositoryInterface
	auditService AuditServiceInterface
}

func NewProfileService(
	userRepo repositories.UserRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	auditService AuditServiceInterface,
) ProfileServiceInterface {
	return &ProfileService{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

// GetProfile returns the user and their profile, creating the profile on
// first access.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, *models.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return user, profile, nil
}

// UpdateProfile changes username and/or email. Each must stay unique across
// all users; member_since never changes.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest, ipAddress, userAgent string) (*models.User, *models.UserProfile, error) {
	user, profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	changes := map[string]interface{}{}
	username, email := user.Username, user.Email

	if req.Username != nil && *req.Username != user.Username {
		username = *req.Username
		if err := s.ensureUnique(ctx, userID, username, s.userRepo.GetByUsername, ErrUsernameExists); err != nil {
			return nil, nil, err
		}
		changes["username"] = map[string]string{"old": user.Username, "new": username}
	}

	if req.Email != nil && !strings.EqualFold(*req.Email, user.Email) {
		email = strings.ToLower(strings.TrimSpace(*req.Email))
		if err := s.ensureUnique(ctx, userID, email, s.userRepo.GetByEmail, ErrEmailExists); err != nil {
			return nil, nil, err
		}
		changes["email"] = map[string]string{"old": user.Email, "new": email}
	}

	if len(changes) == 0 {
		return user, profile, nil
	}

	if err := s.userRepo.UpdateIdentity(ctx, userID, username, email); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUsernameTaken):
			return nil, nil, ErrUsernameExists
		case errors.Is(err, repositories.ErrEmailAlreadyExists):
			return nil, nil, ErrEmailExists
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, nil, ErrProfileNotFound
		}
		if verr := asValidationError(err); verr != err {
			return nil, nil, verr
		}
		return nil, nil, fmt.Errorf("failed to update profile: %w", err)
	}

	user.Username = username
	user.Email = email
	s.auditService.LogProfileUpdate(ctx, userID, ipAddress, userAgent, changes)

	return user, profile, nil
}

// ensureUnique fails with conflict when value already belongs to another user.
func (s *ProfileService) ensureUnique(
	ctx context.Context,
	userID uuid.UUID,
	value string,
	lookup func(context.Context, string) (*models.User, error),
	conflict error,
) error {
	existing, err := lookup(ctx, value)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check uniqueness: %w", err)
	}
	if existing.ID != userID {
		return conflict
	}
	return nil
}
