package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	categoryOperations      *prometheus.CounterVec
	transactionOperations   *prometheus.CounterVec
	ownershipViolations     *prometheus.CounterVec
	persistenceFailures     *prometheus.CounterVec
	reassignedTransactions  prometheus.Histogram
	dashboardDuration       prometheus.Histogram
	transactionListDuration prometheus.Histogram
}

// NewPrometheusMetrics registers the ledger metrics with reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not panic.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		categoryOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_category_operations_total",
				Help: "Total number of category operations by operation and status",
			},
			[]string{"operation", "status"},
		),
		transactionOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transaction_operations_total",
				Help: "Total number of transaction operations by operation and status",
			},
			[]string{"operation", "status"},
		),
		ownershipViolations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_ownership_violations_total",
				Help: "Total number of requests for rows owned by another user",
			},
			[]string{"resource"},
		),
		persistenceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_persistence_failures_total",
				Help: "Total number of unclassified store failures",
			},
			[]string{"operation"},
		),
		reassignedTransactions: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_category_reassigned_transactions",
				Help:    "Number of transactions moved to the default category per category deletion",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_dashboard_duration_milliseconds",
				Help:    "Dashboard summary duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionListDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_transaction_list_duration_milliseconds",
				Help:    "Transaction list duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	status := tags["status"]

	switch name {
	case "category_operation":
		if operation != "" && status != "" {
			m.categoryOperations.WithLabelValues(operation, status).Inc()
		}
	case "transaction_operation":
		if operation != "" && status != "" {
			m.transactionOperations.WithLabelValues(operation, status).Inc()
		}
	case "ownership_violation":
		if resource := tags["resource"]; resource != "" {
			m.ownershipViolations.WithLabelValues(resource).Inc()
		}
	case "persistence_failure":
		m.persistenceFailures.WithLabelValues(operation).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard_summary":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	case "transaction_list":
		m.transactionListDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "category_reassigned_transactions":
		m.reassignedTransactions.Observe(value)
	}
}

// noopMetrics is used when a service is built without a recorder
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string) {}

func (noopMetrics) RecordProcessingTime(string, time.Duration) {}

func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

func metricsOrNoop(metrics MetricsRecorderInterface) MetricsRecorderInterface {
	if metrics == nil {
		return noopMetrics{}
	}
	return metrics
}
