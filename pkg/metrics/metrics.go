package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the application's metrics registry, exposed on /api/metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Custom histogram buckets optimized for API response times
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

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

	// Storage Substrate Metrics
	StorageOpDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kv_store_operation_duration_seconds",
			Help:    "Key-value store operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"driver", "operation", "status"},
	)

	StorageOpTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kv_store_operation_total",
			Help: "Total number of key-value store operations",
		},
		[]string{"driver", "operation", "status"},
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
	LoginAttempts = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seniorconnect_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"}, // success, rejected_domain, invalid
	)

	MentorRegistrations = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seniorconnect_mentor_registrations_total",
			Help: "Total number of mentor registration attempts",
		},
		[]string{"status"}, // success, duplicate, validation_error, store_error
	)

	FavoriteToggles = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seniorconnect_favorite_toggles_total",
			Help: "Total number of favorite add/remove operations",
		},
		[]string{"action"}, // add, remove
	)

	DirectoryResults = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seniorconnect_directory_results",
			Help:    "Number of mentor profiles returned by directory listings",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 200},
		},
		[]string{"favorites_only"},
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

var serviceInfo = factory.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "seniorconnect_service_info",
		Help: "Service identity (value is always 1)",
	},
	[]string{"service"},
)

// Init records the service identity gauge.
func Init(serviceName string) {
	serviceInfo.WithLabelValues(serviceName).Set(1)
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
