// Package metrics keeps inventory gauges in a private Prometheus registry and
// writes them in the text exposition format to a file, for node_exporter's
// textfile collector or any scraper that reads files.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/stockkeeper/internal/filex"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

const namespace = "stockkeeper"

// Recorder implements services.Observer.
type Recorder struct {
	path string

	reg        *prometheus.Registry
	records    prometheus.Gauge
	remaining  prometheus.Gauge
	operations *prometheus.CounterVec
}

// NewRecorder returns a Recorder writing to path. An empty path keeps the
// metrics in memory only.
func NewRecorder(path string) *Recorder {
	r := &Recorder{
		path: path,
		reg:  prometheus.NewRegistry(),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Number of stock records.",
		}),
		remaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "remaining_kilograms",
			Help:      "Sum of remaining quantity over all records.",
		}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Store operations by kind.",
		}, []string{"op"}),
	}
	r.reg.MustRegister(r.records, r.remaining, r.operations)
	return r
}

// Observe updates the gauges from s, counts op and rewrites the file.
func (r *Recorder) Observe(op string, s models.Summary) error {
	r.records.Set(float64(s.Count))
	r.remaining.Set(s.Total.InexactFloat64())
	r.operations.WithLabelValues(op).Inc()

	if r.path == "" {
		return nil
	}
	if err := filex.EnsureParentDir(r.path); err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(r.path, r.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}
