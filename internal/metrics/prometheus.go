package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/arloliu/parsum/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// a PrometheusCollector that is never used leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	summationSeconds *prometheus.HistogramVec
	summationsTotal  *prometheus.CounterVec
	partitions       *prometheus.GaugeVec
	mismatchesTotal  *prometheus.CounterVec
	inputSize        prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "parsum" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	runner, err := parsum.NewRunner(&cfg, src, summers, parsum.WithMetrics(metrics.NewPrometheus(reg, "")))
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "parsum"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		factory := promauto.With(p.reg)

		p.summationSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "strategy",
			Name:      "summation_duration_seconds",
			Help:      "Wall-clock duration of one summation by strategy and input size.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16), // 100µs .. ~3.3s
		}, []string{"strategy", "size"})

		p.summationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "strategy",
			Name:      "summations_total",
			Help:      "Total summations performed by strategy.",
		}, []string{"strategy"})

		p.partitions = factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "strategy",
			Name:      "partitions",
			Help:      "Number of partitions used by the last summation of a strategy.",
		}, []string{"strategy"})

		p.mismatchesTotal = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "runner",
			Name:      "mismatches_total",
			Help:      "Totals that disagreed with the sequential total, by strategy.",
		}, []string{"strategy"})

		p.inputSize = factory.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "runner",
			Name:      "input_size",
			Help:      "Element count of the current input sequence.",
		})
	})
}

// RecordInputSize sets the current input size gauge.
func (p *PrometheusCollector) RecordInputSize(size int) {
	p.ensureRegistered()
	p.inputSize.Set(float64(size))
}

// RecordMismatch increments the mismatch counter for strategy.
func (p *PrometheusCollector) RecordMismatch(strategy string) {
	p.ensureRegistered()
	p.mismatchesTotal.WithLabelValues(strategy).Inc()
}

// RecordSummation observes one summation duration (seconds).
func (p *PrometheusCollector) RecordSummation(strategy string, size int, duration float64) {
	p.ensureRegistered()
	p.summationSeconds.WithLabelValues(strategy, strconv.Itoa(size)).Observe(duration)
	p.summationsTotal.WithLabelValues(strategy).Inc()
}

// RecordPartitionCount sets the partition gauge for strategy.
func (p *PrometheusCollector) RecordPartitionCount(strategy string, count int) {
	p.ensureRegistered()
	p.partitions.WithLabelValues(strategy).Set(float64(count))
}
