package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "resume_enhancer"

// metrics holds the server's collectors on a private registry so tests can
// build any number of servers.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	loads    *prometheus.CounterVec
	edits    *prometheus.CounterVec
	sections prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "document_loads_total",
			Help:      "Documents loaded, by source.",
		}, []string{"source"}),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "fragment_edits_total",
			Help:      "Fragment edits by kind and outcome.",
		}, []string{"kind", "outcome"}),
		sections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "document_sections",
			Help:      "Number of sections in the loaded document.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.loads,
		m.edits,
		m.sections,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) observeRequest(route, method string, code int) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
}

func (m *metrics) observeLoad(source string, sections int) {
	m.loads.WithLabelValues(source).Inc()
	m.sections.Set(float64(sections))
}

func (m *metrics) observeEdit(kind string, err error) {
	outcome := "applied"
	if err != nil {
		outcome = "rejected"
	}
	m.edits.WithLabelValues(kind, outcome).Inc()
}
