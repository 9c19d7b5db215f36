package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry is the dedicated registry served on /api/metrics
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	// Custom histogram buckets covering fast in-memory computations up to slow snapshot reads
	CustomAPIBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Database Client Metrics
	DBRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_client_operation_duration_seconds",
			Help:    "Database client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	DBRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_client_operation_total",
			Help: "Total number of database client operations",
		},
		[]string{"operation", "status"},
	)

	InvalidRecords = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alumniconnect_snapshot_invalid_records_total",
			Help: "Records read from storage that violate snapshot invariants",
		},
		[]string{"record_type"},
	)

	// Cache Metrics
	CacheHits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	// Business Metrics
	AnalyticsReportDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alumniconnect_analytics_report_duration_seconds",
			Help:    "Time to produce an analytics report, snapshot read included",
			Buckets: CustomAPIBuckets,
		},
		[]string{"report", "status"},
	)

	AtRiskMentorships = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "alumniconnect_at_risk_mentorships",
			Help: "At-risk active mentorships found by the last risk analysis",
		},
		[]string{"risk_level"},
	)

	OverloadedMentors = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "alumniconnect_overloaded_mentors",
			Help: "Mentors in the OVERLOADED bucket at the last load report",
		},
	)

	AutoBalanceSuggestions = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "alumniconnect_auto_balance_suggestions_total",
			Help: "Total number of mentor assignment suggestions produced",
		},
	)

	AutoBalanceRuns = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alumniconnect_auto_balance_runs_total",
			Help: "Total number of auto-balance runs",
		},
		[]string{"status"},
	)

	// Infrastructure Metrics
	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// Init registers the standard process and Go collectors with a service label
func Init(serviceName string) {
	labeled := prometheus.WrapRegistererWith(prometheus.Labels{"service_name": serviceName}, Registry)
	labeled.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// RecordDBOperation records a database client operation
func RecordDBOperation(operation, status string, duration float64) {
	DBRequestDuration.WithLabelValues(operation, status).Observe(duration)
	DBRequestTotal.WithLabelValues(operation, status).Inc()
}
