package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ppiankov/clariscan/internal/model"
)

// Metrics are the API's Prometheus collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	analyses *prometheus.CounterVec
	findings *prometheus.CounterVec
}

// NewMetrics registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clariscan",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clariscan",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clariscan",
			Name:      "analyses_total",
			Help:      "Completed document analyses by status and overall risk.",
		}, []string{"status", "overall_risk"}),
		findings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clariscan",
			Name:      "findings_total",
			Help:      "Triggered rules by risk level.",
		}, []string{"risk_level"}),
	}

	m.registry.MustRegister(
		m.requests, m.duration, m.analyses, m.findings,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Instrument records request counts and latency per route template
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.code())).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObserveReport counts one finished analysis
func (m *Metrics) ObserveReport(report *model.Report) {
	risk := model.RiskUnknown
	if report.Document != nil {
		risk = report.Document.Overview.OverallRisk
		m.findings.WithLabelValues(string(model.RiskHigh)).Add(float64(len(report.Document.High)))
		m.findings.WithLabelValues(string(model.RiskMedium)).Add(float64(len(report.Document.Medium)))
		m.findings.WithLabelValues(string(model.RiskLow)).Add(float64(len(report.Document.Low)))
	}
	m.analyses.WithLabelValues(string(report.Status), string(risk)).Inc()
}
