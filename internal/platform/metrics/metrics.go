package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus instruments exported by the backend.
type Collector struct {
	namespace string

	requests        *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	projectionRuns  *prometheus.CounterVec
	projectionTime  *prometheus.HistogramVec
	projectionSize  *prometheus.HistogramVec
	importedRecords *prometheus.CounterVec
}

// NewCollector creates the instruments under namespace. Nothing is
// registered until Register is called.
func NewCollector(namespace string) *Collector {
	return &Collector{
		namespace: namespace,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 15),
			},
			[]string{"method", "route"},
		),
		projectionRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "projection_runs_total",
				Help:      "Total number of projection engine runs by kind",
			},
			[]string{"kind"},
		),
		projectionTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "projection_duration_seconds",
				Help:      "Time spent reconstructing history and projecting forward",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 15),
			},
			[]string{"kind"},
		),
		projectionSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "projection_points",
				Help:      "Number of points returned per projection run",
				Buckets:   []float64{12, 60, 120, 240, 480, 960},
			},
			[]string{"kind"},
		),
		importedRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "imported_records_total",
				Help:      "Records accepted or rejected by bundle imports",
			},
			[]string{"record", "outcome"},
		),
	}
}

// Register registers all instruments with registry.
func (c *Collector) Register(registry prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		c.requests,
		c.requestLatency,
		c.projectionRuns,
		c.projectionTime,
		c.projectionSize,
		c.importedRecords,
	}

	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordRequest records one served HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordProjection records one engine run of the given kind ("aggregate" or "accounts").
func (c *Collector) RecordProjection(kind string, points int, duration time.Duration) {
	c.projectionRuns.WithLabelValues(kind).Inc()
	c.projectionTime.WithLabelValues(kind).Observe(duration.Seconds())
	c.projectionSize.WithLabelValues(kind).Observe(float64(points))
}

// RecordImport records the outcome of an import for one record kind.
func (c *Collector) RecordImport(record string, accepted, rejected int) {
	c.importedRecords.WithLabelValues(record, "accepted").Add(float64(accepted))
	c.importedRecords.WithLabelValues(record, "rejected").Add(float64(rejected))
}
