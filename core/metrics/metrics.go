package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tahmidspace/portfolio/core/csrf"
	"github.com/tahmidspace/portfolio/core/handler"
)

// Metrics owns a private registry and the service's collectors.
type Metrics struct {
	registry *prometheus.Registry

	visitors       *prometheus.CounterVec
	storeFailures  *prometheus.CounterVec
	csrfVerdicts   *prometheus.CounterVec
	tokensIssued   prometheus.Counter
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	breakerState   prometheus.Gauge
}

// Config holds metric naming settings.
type Config struct {
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"portfolio"`
}

// New registers all collectors, plus the Go runtime and process collectors,
// on a fresh registry.
func New(cfg Config) *Metrics {
	ns := cfg.Namespace
	if ns == "" {
		ns = "portfolio"
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		visitors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "visitor",
			Name:      "tracked_total",
			Help:      "Requests seen by the visitor tracker, by visitor kind.",
		}, []string{"kind"}),
		storeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "visitor",
			Name:      "store_failures_total",
			Help:      "Failed background writes to the visitor store, by operation.",
		}, []string{"op"}),
		csrfVerdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "csrf",
			Name:      "verifications_total",
			Help:      "CSRF verifications, by result and rejection reason.",
		}, []string{"result", "reason"}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "csrf",
			Name:      "tokens_issued_total",
			Help:      "CSRF tokens issued.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests, by method and status code.",
		}, []string{"method", "code"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		breakerState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "store",
			Name:      "breaker_state",
			Help:      "Visitor store circuit breaker state: 0 closed, 1 half-open, 2 open.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.visitors,
		m.storeFailures,
		m.csrfVerdicts,
		m.tokensIssued,
		m.requests,
		m.requestLatency,
		m.breakerState,
	)

	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// VisitorTracked implements visitor.Observer.
func (m *Metrics) VisitorTracked(isNew bool) {
	kind := "returning"
	if isNew {
		kind = "new"
	}
	m.visitors.WithLabelValues(kind).Inc()
}

// StoreWriteFailed implements visitor.Observer.
func (m *Metrics) StoreWriteFailed(op string) {
	m.storeFailures.WithLabelValues(op).Inc()
}

// CSRFVerified records a guard verdict.
func (m *Metrics) CSRFVerified(v csrf.Verdict) {
	result := "rejected"
	if v.Accepted {
		result = "accepted"
	}
	m.csrfVerdicts.WithLabelValues(result, v.Reason.String()).Inc()
}

// CSRFTokenIssued records a token issuance.
func (m *Metrics) CSRFTokenIssued() {
	m.tokensIssued.Inc()
}

// RequestServed records a finished HTTP request.
func (m *Metrics) RequestServed(method string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method).Observe(elapsed.Seconds())
}

// BreakerStateChanged sets the breaker gauge; state follows gobreaker's ordering.
func (m *Metrics) BreakerStateChanged(state int) {
	m.breakerState.Set(float64(state))
}

// HTTPHandler returns the exposition handler for the registry.
func (m *Metrics) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Handler exposes the registry as a route handler.
func Handler[C handler.Context](m *Metrics) handler.HandlerFunc[C] {
	h := m.HTTPHandler()
	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			h.ServeHTTP(w, r)
			return nil
		}
	}
}
