package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricLedgerTransaction   = "ledger.transaction"
	MetricLedgerDuration      = "ledger.transaction.duration"
	MetricAccountOpened       = "account.opened"
	MetricUserRegistered      = "user.registered"
	MetricAuthorizationDenied = "authorization.denied"
	MetricReconciliation      = "ledger.reconciliation"
	MetricReconciliationDrift = "ledger.reconciliation.drift"
)

// PrometheusMetrics keeps label cardinality bounded: no series is keyed by
// an account, user or transaction id.
type PrometheusMetrics struct {
	ledgerTransactions  *prometheus.CounterVec
	ledgerDuration      prometheus.Histogram
	accountsOpened      *prometheus.CounterVec
	usersRegistered     prometheus.Counter
	authorizationDenied *prometheus.CounterVec
	reconciliations     *prometheus.CounterVec
	reconciliationDrift prometheus.Gauge
}

// NewPrometheusMetrics registers the ledger collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		ledgerTransactions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_total",
				Help: "Total number of ledger transactions by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		ledgerDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_transaction_duration_milliseconds",
				Help:    "Ledger transaction duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		accountsOpened: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_accounts_opened_total",
				Help: "Total number of bank accounts opened by type",
			},
			[]string{"account_type"},
		),
		usersRegistered: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "users_registered_total",
				Help: "Total number of registered users",
			},
		),
		authorizationDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authorization_denied_total",
				Help: "Total number of calls rejected by the authorization policy",
			},
			[]string{"procedure"},
		),
		reconciliations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_reconciliations_total",
				Help: "Total number of account reconciliations by result",
			},
			[]string{"result"},
		),
		reconciliationDrift: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_reconciliation_last_drift_minor_units",
				Help: "Balance minus journal sum of the most recently reconciled account",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricLedgerTransaction:
		m.ledgerTransactions.WithLabelValues(tags["kind"], tags["outcome"]).Inc()
	case MetricAccountOpened:
		m.accountsOpened.WithLabelValues(tags["account_type"]).Inc()
	case MetricUserRegistered:
		m.usersRegistered.Inc()
	case MetricAuthorizationDenied:
		m.authorizationDenied.WithLabelValues(tags["procedure"]).Inc()
	case MetricReconciliation:
		m.reconciliations.WithLabelValues(tags["result"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == MetricLedgerDuration {
		m.ledgerDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, _ map[string]string) {
	if name == MetricReconciliationDrift {
		m.reconciliationDrift.Set(value)
	}
}
