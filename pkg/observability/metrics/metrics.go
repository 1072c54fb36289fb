package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reading sources as reported on the live endpoint.
const (
	SourceSerial = "serial"
	SourceMock   = "mock"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "neuroguard",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "neuroguard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "neuroguard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	readingsServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "neuroguard",
			Subsystem: "biosignals",
			Name:      "readings_served_total",
			Help:      "Total number of live readings served, by source.",
		},
		[]string{"source"},
	)

	analysisResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "neuroguard",
			Subsystem: "analysis",
			Name:      "results_total",
			Help:      "Total number of analysis verdicts issued, by risk level.",
		},
		[]string{"risk"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		readingsServed,
		analysisResults,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RegisterAcquisitionGauge exposes the serial feed state as a gauge. Call it
// once, after the acquisition adapter exists.
func RegisterAcquisitionGauge(active func() bool) {
	Registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "neuroguard",
			Subsystem: "acquisition",
			Name:      "serial_active",
			Help:      "Whether the serial feed is active (1) or the API is in mock fallback (0).",
		},
		func() float64 {
			if active() {
				return 1
			}
			return 0
		},
	))
}

// RecordReadingServed counts one live reading by source.
func RecordReadingServed(source string) {
	readingsServed.WithLabelValues(source).Inc()
}

// RecordAnalysis counts one analysis verdict by risk level.
func RecordAnalysis(risk string) {
	analysisResults.WithLabelValues(risk).Inc()
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// knownPaths keeps the path label bounded; anything unrouted collapses into
// a single bucket.
var knownPaths = map[string]struct{}{
	"/":                {},
	"/biosignals/live": {},
	"/process_data":    {},
	"/ledger/status":   {},
	"/health":          {},
	"/ready":           {},
}

func canonicalPath(raw string) string {
	if raw == "" || raw == "/" {
		return "/"
	}
	path := strings.TrimRight(raw, "/")
	if _, ok := knownPaths[path]; ok {
		return path
	}
	return "/other"
}
