// Package metrics holds the Prometheus instruments for event evaluation
// and alert delivery.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Verdict and delivery label values.
const (
	VerdictFlagged = "flagged"
	VerdictClear   = "clear"

	DeliverySent    = "sent"
	DeliverySkipped = "skipped"

	SurfaceHTTP    = "http"
	SurfaceGateway = "gateway"
)

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	events       *prometheus.CounterVec
	eventErrors  *prometheus.CounterVec
	deliveries   *prometheus.CounterVec
	panics       *prometheus.CounterVec
	evalDuration prometheus.Histogram
}

// New registers the instruments on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "watchlist_events_total",
			Help: "Membership events evaluated by kind and verdict",
		}, []string{"kind", "verdict"}),
		eventErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "watchlist_event_errors_total",
			Help: "Membership events aborted by an error, by kind",
		}, []string{"kind"}),
		deliveries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "watchlist_alert_deliveries_total",
			Help: "Alert deliveries by result",
		}, []string{"result"}),
		panics: f.NewCounterVec(prometheus.CounterOpts{
			Name: "watchlist_panics_recovered_total",
			Help: "Panics recovered by surface (http, gateway) and handler",
		}, []string{"surface", "handler"}),
		evalDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "watchlist_evaluation_duration_seconds",
			Help:    "Time from event receipt to verdict",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		}),
	}
}

// ObserveEvent records one evaluated event.
func (m *Metrics) ObserveEvent(kind string, flagged bool, took time.Duration) {
	if m == nil {
		return
	}
	verdict := VerdictClear
	if flagged {
		verdict = VerdictFlagged
	}
	m.events.WithLabelValues(kind, verdict).Inc()
	m.evalDuration.Observe(took.Seconds())
}

// EventError records one aborted event.
func (m *Metrics) EventError(kind string) {
	if m == nil {
		return
	}
	m.eventErrors.WithLabelValues(kind).Inc()
}

// Delivery records one delivery attempt outcome.
func (m *Metrics) Delivery(result string) {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues(result).Inc()
}

// PanicRecovered records one recovered panic.
func (m *Metrics) PanicRecovered(surface, handler string) {
	if m == nil {
		return
	}
	m.panics.WithLabelValues(surface, handler).Inc()
}
