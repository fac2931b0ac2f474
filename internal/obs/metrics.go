package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	rpcRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grpc_requests_total",
			Help: "Total number of gRPC requests.",
		},
		[]string{"method", "code"},
	)

	rpcRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grpc_request_duration_seconds",
			Help:    "gRPC request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "code"},
	)

	permissionDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_permission_decisions_total",
			Help: "Permission check decisions by outcome.",
		},
		[]string{"result"},
	)

	loginOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_login_attempts_total",
			Help: "Admin login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	sanctionChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sanction_checks_total",
			Help: "Sanction lookups by verdict.",
		},
		[]string{"sanctioned"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests on the ops listener.",
		},
		[]string{"method", "path", "status"},
	)
)

// Init registers all collectors in the default registry.
func Init() {
	prometheus.MustRegister(
		rpcRequestsTotal,
		rpcRequestDuration,
		permissionDecisions,
		loginOutcomes,
		sanctionChecks,
		httpRequestsTotal,
	)
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRPC records one completed unary RPC.
func ObserveRPC(method, code string, elapsed time.Duration) {
	rpcRequestsTotal.WithLabelValues(method, code).Inc()
	rpcRequestDuration.WithLabelValues(method, code).Observe(elapsed.Seconds())
}

// CountPermissionDecision records an allow/deny verdict.
func CountPermissionDecision(allowed bool) {
	result := "denied"
	if allowed {
		result = "allowed"
	}
	permissionDecisions.WithLabelValues(result).Inc()
}

// CountLoginOutcome records an admin login attempt outcome
// (success, invalid_credentials, locked, mfa_required, ...).
func CountLoginOutcome(outcome string) {
	loginOutcomes.WithLabelValues(outcome).Inc()
}

// CountSanctionCheck records a sanction lookup verdict.
func CountSanctionCheck(sanctioned bool) {
	sanctionChecks.WithLabelValues(strconv.FormatBool(sanctioned)).Inc()
}

// Instrument wraps an ops HTTP handler with request counting.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, code: 200}
		next.ServeHTTP(sw, r)
		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(sw.code)).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
