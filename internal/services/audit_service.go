package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)

var ErrInvalidUserID = errors.New("invalid user ID")

// AuditService writes audit log rows. A failed write is logged and swallowed.
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{repo: repo, logger: logger}
}

func (s *AuditService) LogSignup(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string) {
	s.record(ctx, userEvent(userID, models.AuditActionSignup, ipAddress, userAgent))
}

func (s *AuditService) LogLogin(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string) {
	s.record(ctx, userEvent(userID, models.AuditActionLogin, ipAddress, userAgent))
}

// LogFailedLogin records an attempt that matched no account or the wrong
// password. The row has no owner.
func (s *AuditService) LogFailedLogin(ctx context.Context, email, ipAddress, userAgent, reason string) {
	s.record(ctx, &models.AuditLog{
		Action:    models.AuditActionFailedLogin,
		Resource:  models.AuditResourceUser,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Metadata:  models.AuditMetadata{"email": email, "reason": reason},
	})
}

func (s *AuditService) LogLogout(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string) {
	s.record(ctx, userEvent(userID, models.AuditActionLogout, ipAddress, userAgent))
}

func (s *AuditService) LogTokenRefresh(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string) {
	s.record(ctx, userEvent(userID, models.AuditActionTokenRefresh, ipAddress, userAgent))
}

func (s *AuditService) LogProfileUpdate(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string, changes map[string]interface{}) {
	log := userEvent(userID, models.AuditActionProfileUpdated, ipAddress, userAgent)
	log.Metadata = changes
	s.record(ctx, log)
}

// LogRecordChange records a create, update or delete of a category,
// transaction or budget.
func (s *AuditService) LogRecordChange(ctx context.Context, userID uuid.UUID, action, resource string, resourceID uuid.UUID) {
	s.record(ctx, &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID.String(),
	})
}

// GetUserActivity pages through the user's own audit trail, newest first.
// Limits outside 1..MaxActivityLimit fall back to DefaultActivityLimit.
func (s *AuditService) GetUserActivity(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > MaxActivityLimit {
		limit = DefaultActivityLimit
	}

	logs, total, err := s.repo.GetByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get user activity: %w", err)
	}
	return logs, total, nil
}

func userEvent(userID uuid.UUID, action, ipAddress, userAgent string) *models.AuditLog {
	return &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   models.AuditResourceUser,
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
}

func (s *AuditService) record(ctx context.Context, log *models.AuditLog) {
	if err := s.repo.Create(ctx, log); err != nil {
		s.logger.ErrorContext(ctx, "failed to create audit log",
			"error", err,
			"action", log.Action,
			"resource", log.Resource,
			"resource_id", log.ResourceID,
			"trace_id", TraceIDFromContext(ctx))
	}
}
