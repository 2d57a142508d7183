// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors of a batch run.
//
// Collectors live on a private registry owned by the Collector, so several
// runs (and tests) never collide on the global default registry. A CLI run
// is short-lived; instead of serving /metrics it dumps the registry in the
// node_exporter textfile format with WriteTextfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cyclovander"

// Result labels of LinesTotal.
const (
	ResultComputed = "computed"
	ResultSkipped  = "skipped"
	ResultFailed   = "failed"
)

// Collector groups the batch metrics.
type Collector struct {
	reg *prometheus.Registry

	// LinesTotal counts input lines by outcome.
	LinesTotal *prometheus.CounterVec
	// ComputeSeconds tracks the duration of one n → result computation.
	ComputeSeconds prometheus.Histogram
	// Dimension tracks φ(n), the size of the inverted Gram matrix.
	Dimension prometheus.Histogram
	// UnreliableTotal counts results whose residual exceeded the tolerance.
	UnreliableTotal prometheus.Counter
	// Workers is the configured pool size of the current run.
	Workers prometheus.Gauge
}

// New registers a fresh set of collectors on a private registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		reg: reg,
		LinesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_lines_total",
			Help:      "Input lines processed by outcome",
		}, []string{"result"}),
		ComputeSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_duration_seconds",
			Help:      "Duration of a single trace computation in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~42s
		}),
		Dimension: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gram_dimension",
			Help:      "Dimension phi(n) of the inverted Gram matrix",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 13), // 1 to 4096
		}),
		UnreliableTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unreliable_results_total",
			Help:      "Results whose pre-rounding residual exceeded the tolerance",
		}),
		Workers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "batch_workers",
			Help:      "Configured worker pool size",
		}),
	}
}

// Registry exposes the private registry, e.g. for an HTTP handler or tests.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// ObserveComputed records one successful computation.
func (c *Collector) ObserveComputed(dim int, took time.Duration, reliable bool) {
	c.LinesTotal.WithLabelValues(ResultComputed).Inc()
	c.ComputeSeconds.Observe(took.Seconds())
	c.Dimension.Observe(float64(dim))
	if !reliable {
		c.UnreliableTotal.Inc()
	}
}

// ObserveSkipped records a malformed line.
func (c *Collector) ObserveSkipped() { c.LinesTotal.WithLabelValues(ResultSkipped).Inc() }

// ObserveFailed records a computation that returned an error.
func (c *Collector) ObserveFailed() { c.LinesTotal.WithLabelValues(ResultFailed).Inc() }

// WriteTextfile writes every collector to path in the text exposition format.
// The file is written to a temporary name and renamed into place.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
