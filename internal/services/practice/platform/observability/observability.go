// Package observability provides request logging and Prometheus metrics for
// the practice service.
package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Action outcomes recorded by ObserveAction.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics owns the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	actions  *prometheus.CounterVec
}

// NewMetrics registers the service collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "practice",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route group and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "practice",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route group.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "practice",
			Name:      "widget_actions_total",
			Help:      "Widget actions by widget, action and outcome.",
		}, []string{"widget", "action", "outcome"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.actions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the private registry for test gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveAction counts one widget action.
func (m *Metrics) ObserveAction(widgetID string, action string, outcome string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(widgetID, action, outcome).Inc()
}

func (m *Metrics) observeRequest(method string, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RouteGroup collapses a request path to a low-cardinality label.
func RouteGroup(path string) string {
	switch {
	case path == "/":
		return "home"
	case strings.HasPrefix(path, "/api/"):
		return "api"
	case strings.HasPrefix(path, "/static/"):
		return "static"
	case path == "/metrics":
		return "metrics"
	case strings.HasPrefix(path, "/frontend/"):
		rest := strings.TrimPrefix(path, "/frontend/")
		switch {
		case strings.Contains(rest, "/actions/"):
			return "problem_action"
		case strings.HasSuffix(rest, "/reset"):
			return "problem_reset"
		default:
			return "problem"
		}
	default:
		return "other"
	}
}

// RequestLogger logs each request and records request metrics.
func RequestLogger(logger *zap.Logger, metrics *Metrics) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rw, r)
			status := rw.statusCode()
			elapsed := time.Since(start)
			metrics.observeRequest(r.Method, RouteGroup(r.URL.Path), status, elapsed)
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", rw.bytes),
				zap.Duration("latency", elapsed),
				zap.String("request_id", r.Header.Get("X-Request-ID")),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (r *statusRecorder) statusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}
