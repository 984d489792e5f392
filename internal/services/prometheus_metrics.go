package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics.
const (
	MetricAuthEvent      = "authentication_event"
	MetricRecordChange   = "record_change"
	MetricReportComputed = "report_computed"
	MetricReportDuration = "report_duration"
	MetricSweepDeleted   = "maintenance_deleted"
)

type PrometheusMetrics struct {
	authenticationEventsTotal *prometheus.CounterVec
	recordChangesTotal        *prometheus.CounterVec
	reportsTotal              *prometheus.CounterVec
	reportDuration            *prometheus.HistogramVec
	maintenanceDeleted        *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the collectors with reg. Pass
// prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		recordChangesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_changes_total",
				Help: "Total number of category, transaction and budget writes",
			},
			[]string{"resource", "action"},
		),
		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_computed_total",
				Help: "Total number of reports computed",
			},
			[]string{"report", "status"},
		),
		reportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_duration_milliseconds",
				Help:    "Report computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"report"},
		),
		maintenanceDeleted: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "maintenance_rows_deleted",
				Help: "Rows deleted by the last maintenance sweep",
			},
			[]string{"table"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAuthEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case MetricRecordChange:
		m.recordChangesTotal.WithLabelValues(tags["resource"], tags["action"]).Inc()
	case MetricReportComputed:
		m.reportsTotal.WithLabelValues(tags["report"], tags["status"]).Inc()
	}
}

// RecordProcessingTime observes a report duration. The report name follows
// the metric name after a colon, as in "report_duration:summary".
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	metric, label, _ := strings.Cut(name, ":")
	if metric == MetricReportDuration {
		m.reportDuration.WithLabelValues(label).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == MetricSweepDeleted {
		m.maintenanceDeleted.WithLabelValues(tags["table"]).Set(value)
	}
}
