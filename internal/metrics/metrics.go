// Package metrics exposes validation activity as Prometheus metrics. It
// listens to the validation and schema loading events on an event bus.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hanpama/sdlcheck/internal/eventbus"
	"github.com/hanpama/sdlcheck/internal/events"
)

const namespace = "sdlcheck"

// Collector holds the metrics updated from events.
type Collector struct {
	registry *prometheus.Registry

	validations *prometheus.CounterVec
	duration    prometheus.Histogram
	diagnostics prometheus.Gauge
	loads       *prometheus.CounterVec
}

// NewCollector registers the metrics on registry. A nil registry gets a
// fresh one.
func NewCollector(registry *prometheus.Registry) (*Collector, error) {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	c := &Collector{
		registry: registry,
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Schema validations by result and whether the result was cached.",
		}, []string{"result", "cached"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_duration_seconds",
			Help:      "Time spent validating a schema.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}),
		diagnostics: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_validation_diagnostics",
			Help:      "Number of diagnostics reported by the most recent validation.",
		}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_loads_total",
			Help:      "Schema loads by result.",
		}, []string{"result"}),
	}
	for _, m := range []prometheus.Collector{c.validations, c.duration, c.diagnostics, c.loads} {
		if err := registry.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Subscribe starts recording events published on bus.
func (c *Collector) Subscribe(bus *eventbus.Bus) (unsubscribe func()) {
	unsubs := []func(){
		eventbus.Subscribe(bus, func(_ context.Context, e events.ValidationFinish) { c.recordValidation(e) }),
		eventbus.Subscribe(bus, func(_ context.Context, e events.SchemaLoaded) { c.recordLoad(e) }),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func (c *Collector) recordValidation(e events.ValidationFinish) {
	result := "valid"
	if e.Diagnostics > 0 {
		result = "invalid"
	}
	cached := "false"
	if e.Cached {
		cached = "true"
	}
	c.validations.WithLabelValues(result, cached).Inc()
	c.diagnostics.Set(float64(e.Diagnostics))
	if !e.Cached {
		c.duration.Observe(e.Duration.Seconds())
	}
}

func (c *Collector) recordLoad(e events.SchemaLoaded) {
	result := "ok"
	if e.Err != nil {
		result = "error"
	}
	c.loads.WithLabelValues(result).Inc()
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
