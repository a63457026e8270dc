// ABOUTME: Prometheus recorder for probe, extraction and fallback outcomes
// ABOUTME: Implements interfaces.Metrics and exposes an HTTP handler for scraping

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "splitview"

// Recorder implements interfaces.Metrics on its own registry
type Recorder struct {
	registry *prometheus.Registry

	probesTotal      *prometheus.CounterVec
	extractionsTotal *prometheus.CounterVec
	extractDuration  *prometheus.HistogramVec
	fallbacksTotal   *prometheus.CounterVec
}

// NewRecorder creates a recorder with Go runtime and process collectors
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		probesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "embed_probes_total",
				Help:      "Embeddability probes by outcome",
			},
			[]string{"status"}, // allowed, blocked, unknown
		),
		extractionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "extractions_total",
				Help:      "Article extractions by engine and outcome",
			},
			[]string{"engine", "outcome"},
		),
		extractDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "extraction_duration_seconds",
				Help:      "Time spent fetching and extracting one article",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"engine"},
		),
		fallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fallback_extractions_total",
				Help:      "Articles recovered by a site-specific fallback",
			},
			[]string{"fallback"},
		),
	}
}

// ProbeResult counts one probe outcome
func (r *Recorder) ProbeResult(status string) {
	r.probesTotal.WithLabelValues(status).Inc()
}

// ExtractResult counts one extraction and observes its duration
func (r *Recorder) ExtractResult(engine, outcome string, elapsed time.Duration) {
	r.extractionsTotal.WithLabelValues(engine, outcome).Inc()
	r.extractDuration.WithLabelValues(engine).Observe(elapsed.Seconds())
}

// FallbackUsed counts an article recovered by the named fallback
func (r *Recorder) FallbackUsed(name string) {
	r.fallbacksTotal.WithLabelValues(name).Inc()
}

// Handler serves the registry in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
