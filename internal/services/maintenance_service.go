package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budget-tracker/internal/repositories"
)

// MaintenanceService periodically deletes expired refresh tokens, expired
// blacklist entries and audit rows older than the retention window.
type MaintenanceService struct {
	refreshTokenRepo     repositories.RefreshTokenRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	auditRepo            repositories.AuditLogRepositoryInterface
	activity             ActivityLoggerInterface
	metrics              MetricsRecorderInterface
	logger               *slog.Logger
	interval             time.Duration
	auditRetention       time.Duration
}

func NewMaintenanceService(
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	activity ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	interval, auditRetention time.Duration,
) MaintenanceServiceInterface {
	return &MaintenanceService{
		refreshTokenRepo:     refreshTokenRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		auditRepo:            auditRepo,
		activity:             activity,
		metrics:              metrics,
		logger:               logger,
		interval:             interval,
		auditRetention:       auditRetention,
	}
}

// Sweep runs one cleanup pass. Audit rows are kept forever when the
// retention is zero.
func (s *MaintenanceService) Sweep(ctx context.Context) error {
	refreshDeleted, err := s.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge refresh tokens: %w", err)
	}

	blacklistDeleted, err := s.blacklistedTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge blacklisted tokens: %w", err)
	}

	var auditDeleted int64
	if s.auditRetention > 0 {
		auditDeleted, err = s.auditRepo.DeleteOlderThan(ctx, s.auditRetention)
		if err != nil {
			return fmt.Errorf("failed to purge audit logs: %w", err)
		}
	}

	s.metrics.RecordGauge(MetricSweepDeleted, float64(refreshDeleted), map[string]string{"table": "refresh_tokens"})
	s.metrics.RecordGauge(MetricSweepDeleted, float64(blacklistDeleted), map[string]string{"table": "blacklisted_tokens"})
	s.metrics.RecordGauge(MetricSweepDeleted, float64(auditDeleted), map[string]string{"table": "audit_logs"})
	s.activity.LogMaintenanceSweep(ctx, refreshDeleted, blacklistDeleted, auditDeleted)
	return nil
}

// Start sweeps once immediately and then every interval until ctx is done.
// It blocks; run it in its own goroutine.
func (s *MaintenanceService) Start(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("maintenance sweeper disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("maintenance sweep failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
