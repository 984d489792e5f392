package services

import (
	"context"

	"github.com/google/uuid"
)

// changeRecorder fans a successful write out to the audit trail, the
// activity log and the record change counter.
type changeRecorder struct {
	audit    AuditServiceInterface
	activity ActivityLoggerInterface
	metrics  MetricsRecorderInterface
}

func (r changeRecorder) record(ctx context.Context, userID uuid.UUID, resource, action string, id uuid.UUID) {
	r.audit.LogRecordChange(ctx, userID, action, resource, id)
	r.activity.LogRecordChanged(ctx, userID, resource, action, id)
	r.metrics.IncrementCounter(MetricRecordChange, map[string]string{"resource": resource, "action": action})
}
