package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by report and removal counters.
const (
	OutcomeOK        = "ok"
	OutcomeRejected  = "rejected"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

// Metrics holds the registry's Prometheus collectors.
type Metrics struct {
	Registry *prometheus.Registry

	Checks   *prometheus.CounterVec
	Reports  *prometheus.CounterVec
	Removals *prometheus.CounterVec
	Entries  prometheus.Gauge
	Today    prometheus.Gauge
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Checks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "screener_checks_total",
			Help: "Number lookups, labelled by whether the number was found",
		}, []string{"result"}),
		Reports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "screener_reports_total",
			Help: "Report attempts by outcome",
		}, []string{"outcome"}),
		Removals: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "screener_removals_total",
			Help: "Removal attempts by outcome",
		}, []string{"outcome"}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "screener_registry_entries",
			Help: "Current number of registry entries",
		}),
		Today: factory.NewGauge(prometheus.GaugeOpts{
			Name: "screener_reported_today",
			Help: "Entries created on the current calendar day, as of the last refresh",
		}),
	}
}

// RecordCheck counts a lookup.
func (m *Metrics) RecordCheck(matched bool) {
	if m == nil {
		return
	}
	result := "no_match"
	if matched {
		result = "match"
	}
	m.Checks.WithLabelValues(result).Inc()
}

// RecordReport counts a report attempt.
func (m *Metrics) RecordReport(outcome string) {
	if m == nil {
		return
	}
	m.Reports.WithLabelValues(outcome).Inc()
}

// RecordRemoval counts a removal attempt.
func (m *Metrics) RecordRemoval(outcome string) {
	if m == nil {
		return
	}
	m.Removals.WithLabelValues(outcome).Inc()
}

// SetEntries publishes the registry size.
func (m *Metrics) SetEntries(n int) {
	if m == nil {
		return
	}
	m.Entries.Set(float64(n))
}

// SetStats publishes a full stats snapshot.
func (m *Metrics) SetStats(total, reportedToday int) {
	if m == nil {
		return
	}
	m.Entries.Set(float64(total))
	m.Today.Set(float64(reportedToday))
}
