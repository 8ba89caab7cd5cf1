// Package metrics provides Prometheus collectors for payment sync operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricPaymentSyncTotal       = "payment_sync_total"
	MetricOutcomeDispatchTotal   = "payment_outcome_dispatch_total"
	MetricCustomerEnsureTotal    = "gateway_customer_ensure_total"
	MetricBankListRefreshesTotal = "bank_list_refreshes_total"
)

// Reconcile results.
const (
	ResultUpdated = "updated"
	ResultIgnored = "ignored"
	ResultError   = "error"
)

// Customer provisioning results.
const (
	CustomerFound   = "found"
	CustomerCreated = "created"
	CustomerError   = "error"
)

// Metrics contains the collectors for the sync service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	syncTotal       *prometheus.CounterVec
	dispatchTotal   *prometheus.CounterVec
	customerTotal   *prometheus.CounterVec
	bankListRefresh *prometheus.CounterVec
}

// NewMetrics creates the collectors without registering them.
func NewMetrics() *Metrics {
	return &Metrics{
		syncTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricPaymentSyncTotal,
				Help: "Total number of payment status syncs by result",
			},
			[]string{"result"},
		),
		dispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricOutcomeDispatchTotal,
				Help: "Total number of outcome handler executions by outcome and status",
			},
			[]string{"outcome", "status"},
		),
		customerTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricCustomerEnsureTotal,
				Help: "Total number of gateway customer lookups by result",
			},
			[]string{"result"},
		),
		bankListRefresh: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricBankListRefreshesTotal,
				Help: "Total number of bank list refreshes by result",
			},
			[]string{"result"},
		),
	}
}

// Register registers all collectors with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.syncTotal,
		m.dispatchTotal,
		m.customerTotal,
		m.bankListRefresh,
	}
}

func (m *Metrics) IncSync(result string) {
	if m == nil {
		return
	}
	m.syncTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncOutcomeDispatch(outcome string, status string) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(outcome, status).Inc()
}

func (m *Metrics) IncCustomerEnsure(result string) {
	if m == nil {
		return
	}
	m.customerTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncBankListRefresh(result string) {
	if m == nil {
		return
	}
	m.bankListRefresh.WithLabelValues(result).Inc()
}
