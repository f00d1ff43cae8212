package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes counters for rendered pages, backend calls and blocked form submissions,
// and histograms for backend call and database query durations.
type Metrics struct {
	PageRenders         *prometheus.CounterVec
	BackendCalls        *prometheus.CounterVec
	BackendCallDuration *prometheus.HistogramVec
	BlockedSubmissions  *prometheus.CounterVec
	DBQueryDuration     *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		PageRenders: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ems_page_renders_total",
			Help: "Total number of rendered pages, by view.",
		}, []string{"view"}),
		BackendCalls: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ems_backend_calls_total",
			Help: "Total number of employee API calls made by the frontend.",
		}, []string{"operation", "status"}),
		BackendCallDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ems_backend_call_duration_seconds",
			Help:    "Duration of employee API calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		BlockedSubmissions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ems_blocked_submissions_total",
			Help: "Total number of form submissions blocked by an empty field.",
		}, []string{"field"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ems_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'list_employees', 'update_employee'
	}

	for _, status := range []string{"success", "failure"} {
		metrics.BackendCalls.WithLabelValues("list", status)
	}

	return metrics
}
