// Package metrics exposes the Prometheus collectors of the address book.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"addressable/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AddressMetrics counts geocoding outcomes and address mutations.
// A nil *AddressMetrics records nothing.
type AddressMetrics struct {
	GeocodeRequests *prometheus.CounterVec
	GeocodeDuration prometheus.Histogram
	Mutations       *prometheus.CounterVec
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewAddressMetrics registers the collectors on reg.
func NewAddressMetrics(reg prometheus.Registerer, namespace string) *AddressMetrics {
	factory := promauto.With(reg)

	return &AddressMetrics{
		GeocodeRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "geocoding_requests_total",
				Help:      "Geocoding attempts by outcome",
			},
			[]string{"outcome"},
		),
		GeocodeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "geocoding_duration_seconds",
				Help:      "Time spent in the geocoding provider",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5},
			},
		),
		Mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "address_mutations_total",
				Help:      "Addresses written by operation",
			},
			[]string{"operation"},
		),
	}
}

// FromConfig is the fx constructor.
func FromConfig(reg *prometheus.Registry, cfg *config.Config) *AddressMetrics {
	return NewAddressMetrics(reg, cfg.Metrics.Namespace)
}

// Handler serves the registry in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// ObserveGeocode records one geocoding attempt. Skipped attempts are counted but not timed.
func (m *AddressMetrics) ObserveGeocode(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.GeocodeRequests.WithLabelValues(outcome).Inc()
	if outcome != "skipped" {
		m.GeocodeDuration.Observe(elapsed.Seconds())
	}
}

// AddMutations counts rows written by an operation.
func (m *AddressMetrics) AddMutations(operation string, rows int64) {
	if m == nil || rows <= 0 {
		return
	}

	m.Mutations.WithLabelValues(operation).Add(float64(rows))
}

// HTTPMetrics counts API requests by route template.
type HTTPMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the request collectors on reg.
func NewHTTPMetrics(reg prometheus.Registerer, namespace string) *HTTPMetrics {
	factory := promauto.With(reg)

	return &HTTPMetrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// HTTPFromConfig is the fx constructor.
func HTTPFromConfig(reg *prometheus.Registry, cfg *config.Config) *HTTPMetrics {
	return NewHTTPMetrics(reg, cfg.Metrics.Namespace)
}

// ObserveRequest records a finished request. Unmatched routes share one label.
func (m *HTTPMetrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}

	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.Duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
