package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the intake funnel.
type Metrics struct {
	IntakesSubmitted  *prometheus.CounterVec
	CheckoutsStarted  prometheus.Counter
	PaymentsCompleted prometheus.Counter
	PaymentsFailed    prometheus.Counter
	RelayFailures     *prometheus.CounterVec
	CitationUploads   prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		IntakesSubmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_gateway_intakes_submitted_total",
			Help: "Direct intake submissions accepted, by kind (traffic or dui)",
		}, []string{"kind"}),
		CheckoutsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "intake_gateway_checkouts_started_total",
			Help: "Hosted checkout sessions created",
		}),
		PaymentsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "intake_gateway_payments_completed_total",
			Help: "checkout.session.completed events processed",
		}),
		PaymentsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "intake_gateway_payments_failed_total",
			Help: "payment failure events received",
		}),
		RelayFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_gateway_relay_failures_total",
			Help: "Best-effort relay failures, by sink (sheet, email, workbook, storage)",
		}, []string{"sink"}),
		CitationUploads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "intake_gateway_citation_uploads_total",
			Help: "Citation images relayed to document storage",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "intake_gateway_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}
