package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// Upstream fetch metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests to the tracking server",
		},
		[]string{"service", "endpoint", "status"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Tracking server request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)

	// Fleet refresh metrics
	ObservationsFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "observations_fetched_total",
			Help: "Total number of observations fetched from the tracking server",
		},
		[]string{"service", "provider"},
	)

	TracksAssembledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracks_assembled_total",
			Help: "Total number of tracks assembled",
		},
		[]string{"service", "provider", "status"},
	)

	FleetRefreshDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fleet_refresh_duration_seconds",
			Help:    "Full fleet refresh duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"service", "provider"},
	)

	UnitFetchFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unit_fetch_failures_total",
			Help: "Total number of per-unit fetch failures during refresh",
		},
		[]string{"service", "provider"},
	)

	WebSocketConnectionsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Current number of active WebSocket connections",
		},
		[]string{"service"},
	)

	DatabaseQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "database_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"service", "operation", "status"},
	)

	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)

	NATSMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nats_messages_published_total",
			Help: "Total number of messages published to NATS",
		},
		[]string{"service", "subject", "status"},
	)

	NATSMessagesConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nats_messages_consumed_total",
			Help: "Total number of messages consumed from NATS",
		},
		[]string{"service", "subject", "status"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordUpstreamRequest records a request to the tracking server
func RecordUpstreamRequest(service, endpoint string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(service, endpoint, status).Inc()
	UpstreamRequestDuration.WithLabelValues(service, endpoint).Observe(duration.Seconds())
}

// RecordDatabaseQuery records database query metrics
func RecordDatabaseQuery(service, operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DatabaseQueriesTotal.WithLabelValues(service, operation, status).Inc()
	DatabaseQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// RecordNATSPublish records NATS publish metrics
func RecordNATSPublish(service, subject string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	NATSMessagesPublished.WithLabelValues(service, subject, status).Inc()
}

// RecordNATSConsume records NATS consume metrics
func RecordNATSConsume(service, subject string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	NATSMessagesConsumed.WithLabelValues(service, subject, status).Inc()
}

// RecordFleetRefresh records a completed fleet refresh cycle
func RecordFleetRefresh(service, provider string, observations, tracks, skipped, failed int, duration time.Duration) {
	ObservationsFetchedTotal.WithLabelValues(service, provider).Add(float64(observations))
	TracksAssembledTotal.WithLabelValues(service, provider, "assembled").Add(float64(tracks))
	TracksAssembledTotal.WithLabelValues(service, provider, "skipped").Add(float64(skipped))
	UnitFetchFailuresTotal.WithLabelValues(service, provider).Add(float64(failed))
	FleetRefreshDuration.WithLabelValues(service, provider).Observe(duration.Seconds())
}
