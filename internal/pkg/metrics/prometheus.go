package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric when no namespace is configured.
const DefaultNamespace = "basketsplit"

// PrometheusCollector implements SplitMetrics backed by Prometheus.
//
// Collectors are created and registered on first use, so constructing a
// PrometheusCollector that is never used leaves the registry untouched.
type PrometheusCollector struct {
	*NopMetrics

	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	splitsTotal    *prometheus.CounterVec
	splitDuration  prometheus.Histogram
	coverSize      prometheus.Histogram
	catalogReloads *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements SplitMetrics.
var _ SplitMetrics = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to DefaultNamespace if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &PrometheusCollector{NopMetrics: NewNop(), reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.splitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "split",
			Name:      "requests_total",
			Help:      "Total basket split attempts by outcome.",
		}, []string{"outcome"})

		p.splitDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "split",
			Name:      "duration_seconds",
			Help:      "Time spent splitting one basket in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		})

		p.coverSize = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "split",
			Name:      "couriers",
			Help:      "Number of couriers in successful assignments.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
		})

		p.catalogReloads = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "catalog",
			Name:      "reloads_total",
			Help:      "Total catalog reload attempts by result (changed,unchanged,failed).",
		}, []string{"result"})

		p.reg.MustRegister(p.splitsTotal)
		p.reg.MustRegister(p.splitDuration)
		p.reg.MustRegister(p.coverSize)
		p.reg.MustRegister(p.catalogReloads)
	})
}

// RecordSplit records the outcome and latency of one split, and the courier
// count of successful ones.
func (p *PrometheusCollector) RecordSplit(outcome string, duration time.Duration, couriers int) {
	p.ensureRegistered()
	p.splitsTotal.WithLabelValues(outcome).Inc()
	p.splitDuration.Observe(duration.Seconds())
	if outcome == OutcomeSuccess {
		p.coverSize.Observe(float64(couriers))
	}
}

// RecordCatalogReload increments the reload counter for result.
func (p *PrometheusCollector) RecordCatalogReload(result string) {
	p.ensureRegistered()
	p.catalogReloads.WithLabelValues(result).Inc()
}
