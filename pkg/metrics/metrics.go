// Package metrics exposes import counters on a private registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	RowImported = "imported"
	RowFailed   = "failed"
)

// Collectors is safe to use through a nil pointer; every method is then a no-op.
type Collectors struct {
	registry   *prometheus.Registry
	importRows *prometheus.CounterVec
	importRuns *prometheus.CounterVec
}

func New() *Collectors {
	reg := prometheus.NewRegistry()
	c := &Collectors{
		registry: reg,
		importRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "alqualis",
			Name:      "import_rows_total",
			Help:      "Spreadsheet rows processed by the importer, by outcome.",
		}, []string{"outcome"}),
		importRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "alqualis",
			Name:      "import_runs_total",
			Help:      "Import runs, by result (complete or partial).",
		}, []string{"result"}),
	}
	reg.MustRegister(
		c.importRows,
		c.importRuns,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collectors) RowDone(outcome string) {
	if c == nil {
		return
	}
	c.importRows.WithLabelValues(outcome).Inc()
}

func (c *Collectors) RunDone(partial bool) {
	if c == nil {
		return
	}
	result := "complete"
	if partial {
		result = "partial"
	}
	c.importRuns.WithLabelValues(result).Inc()
}

func (c *Collectors) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collectors) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
