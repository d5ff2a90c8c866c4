// Package telemetry exposes negotiation metrics and tracing.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/domain/entity"
)

// Metrics implements port.NegotiationMetrics on a prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	// OutcomesTotal counts settled capabilities by status and error kind.
	OutcomesTotal *prometheus.CounterVec

	// AcquisitionDuration tracks how long each capability took to settle.
	AcquisitionDuration *prometheus.HistogramVec

	// NegotiationsTotal counts finished negotiations by result.
	NegotiationsTotal *prometheus.CounterVec

	// DegradedGrantsTotal counts grants that succeeded in a reduced mode.
	DegradedGrantsTotal *prometheus.CounterVec
}

var _ port.NegotiationMetrics = (*Metrics)(nil)

// NewMetrics registers the negotiation collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		OutcomesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboard_capability_outcomes_total",
				Help: "Total number of settled capability negotiations",
			},
			[]string{"capability", "status", "error_kind"},
		),
		AcquisitionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "onboard_capability_acquisition_seconds",
				Help:    "Duration of a single capability acquisition",
				Buckets: []float64{0.05, 0.25, 1, 5, 15, 30, 60, 120, 300},
			},
			[]string{"capability"},
		),
		NegotiationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboard_negotiations_total",
				Help: "Total number of finished permission negotiations",
			},
			[]string{"result"},
		),
		DegradedGrantsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboard_degraded_grants_total",
				Help: "Total number of grants that fell back to a reduced mode",
			},
			[]string{"capability", "reason"},
		),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveOutcome implements port.NegotiationMetrics.
func (m *Metrics) ObserveOutcome(capability entity.CapabilityID, outcome entity.Outcome, elapsed time.Duration) {
	kind := ""
	if err := outcome.Err(); err != nil {
		kind = string(err.Kind)
	}
	m.OutcomesTotal.WithLabelValues(string(capability), string(outcome.Status()), kind).Inc()
	m.AcquisitionDuration.WithLabelValues(string(capability)).Observe(elapsed.Seconds())

	if g, ok := outcome.Grant(); ok && g.IsDegraded() {
		m.DegradedGrantsTotal.WithLabelValues(string(capability), string(g.Degradation)).Inc()
	}
}

// ObserveNegotiation implements port.NegotiationMetrics.
func (m *Metrics) ObserveNegotiation(result *entity.NegotiationResult) {
	if result == nil {
		return
	}
	m.NegotiationsTotal.WithLabelValues(resultLabel(result)).Inc()
}

func resultLabel(result *entity.NegotiationResult) string {
	switch {
	case result.Cancelled():
		return "cancelled"
	case result.AllSatisfied():
		return "satisfied"
	default:
		return "partial"
	}
}
