package forge

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// instrumentTransport layers the standard promhttp round-tripper
// instrumentation over base: one in-flight gauge, one counter by code and
// method, and one duration histogram by method.
func instrumentTransport(reg prometheus.Registerer, base http.RoundTripper) http.RoundTripper {
	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "forge_client_in_flight_requests",
		Help: "Number of in-flight requests to the Forge API.",
	})
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forge_client_requests_total",
			Help: "Total requests to the Forge API by status code and method.",
		},
		[]string{"code", "method"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forge_client_request_duration_seconds",
			Help:    "Forge API request latency by method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
	reg.MustRegister(inFlight, requests, duration)

	return promhttp.InstrumentRoundTripperInFlight(inFlight,
		promhttp.InstrumentRoundTripperCounter(requests,
			promhttp.InstrumentRoundTripperDuration(duration, base),
		),
	)
}
