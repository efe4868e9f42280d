package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookingsdk"

// Request outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeHTTPErr  = "http_error"
	OutcomeNetErr   = "network_error"
	OutcomeRejected = "rejected"
	OutcomeCached   = "cached"
)

// Metrics instruments outbound calls to the booking platform. Each client
// owns one set, registered on the Registerer it was given.
type Metrics struct {
	Requests           *prometheus.CounterVec
	Duration           *prometheus.HistogramVec
	Retries            *prometheus.CounterVec
	BreakerState       *prometheus.GaugeVec
	BreakerTransitions *prometheus.CounterVec
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
}

// New registers the collectors on reg. A nil reg gets a private registry so
// several clients in one process never collide.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		Requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Outbound platform requests by module, HTTP method and outcome",
			},
			[]string{"module", "method", "outcome"},
		),
		Duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Latency of outbound platform requests, retries included",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"module", "method"},
		),
		Retries: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "retries_total",
				Help:      "Retried platform requests by module",
			},
			[]string{"module"},
		),
		BreakerState: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_state",
				Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
			},
			[]string{"name"},
		),
		BreakerTransitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_transitions_total",
				Help:      "Circuit breaker state transitions",
			},
			[]string{"name", "from", "to"},
		),
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Resource lookups served from the response cache",
		}),
		CacheMisses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Cacheable resource lookups that went to the platform",
		}),
	}
}

func (m *Metrics) ObserveRequest(module, method, outcome string, elapsed time.Duration) {
	m.Requests.WithLabelValues(module, method, outcome).Inc()
	m.Duration.WithLabelValues(module, method).Observe(elapsed.Seconds())
}
