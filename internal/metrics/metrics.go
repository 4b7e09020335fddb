package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds the relay's collectors and backs the /metrics endpoint.
var Registry = prometheus.NewRegistry()

var (
	// UpstreamRequests counts outbound calls by remote service, method and status.
	UpstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_upstream_requests_total",
		Help: "Outbound calls to remote services",
	}, []string{"service", "method", "status"})

	// UpstreamDuration observes outbound call latency.
	UpstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "relay_upstream_request_duration_seconds",
		Help:    "Outbound call latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"service"})

	// KeepAlivePings counts self-pings by result (ok, error).
	KeepAlivePings = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_keepalive_pings_total",
		Help: "Keep-alive self-pings",
	}, []string{"result"})

	// CosmeticLookups counts resolver outcomes (literal, cached, catalog, not_found, error).
	CosmeticLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_cosmetic_lookups_total",
		Help: "Cosmetic resolver outcomes",
	}, []string{"outcome"})
)

func init() {
	Registry.MustRegister(
		UpstreamRequests,
		UpstreamDuration,
		KeepAlivePings,
		CosmeticLookups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
