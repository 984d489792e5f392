package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ActivityLogger writes one structured slog event per domain action. Every
// event carries an event_type and the request trace ID.
type ActivityLogger struct {
	logger *slog.Logger
}

func NewActivityLogger(logger *slog.Logger) ActivityLoggerInterface {
	return &ActivityLogger{logger: logger}
}

func (al *ActivityLogger) LogRecordChanged(ctx context.Context, userID uuid.UUID, resource, action string, resourceID uuid.UUID) {
	al.logger.InfoContext(ctx, "record changed",
		slog.String("event_type", "record_changed"),
		slog.String("user_id", userID.String()),
		slog.String("resource", resource),
		slog.String("action", action),
		slog.String("resource_id", resourceID.String()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *ActivityLogger) LogReportComputed(ctx context.Context, userID uuid.UUID, report string, rows int, duration time.Duration) {
	al.logger.InfoContext(ctx, "report computed",
		slog.String("event_type", "report_computed"),
		slog.String("user_id", userID.String()),
		slog.String("report", report),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *ActivityLogger) LogReportFailed(ctx context.Context, userID uuid.UUID, report string, err error) {
	al.logger.ErrorContext(ctx, "report failed",
		slog.String("event_type", "report_failed"),
		slog.String("user_id", userID.String()),
		slog.String("report", report),
		slog.String("error", err.Error()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *ActivityLogger) LogMaintenanceSweep(ctx context.Context, refreshTokens, blacklistedTokens, auditLogs int64) {
	al.logger.InfoContext(ctx, "maintenance sweep",
		slog.String("event_type", "maintenance_sweep"),
		slog.Int64("refresh_tokens_deleted", refreshTokens),
		slog.Int64("blacklisted_tokens_deleted", blacklistedTokens),
		slog.Int64("audit_logs_deleted", auditLogs),
	)
}
