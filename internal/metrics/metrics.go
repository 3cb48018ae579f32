// Package metrics declares the Prometheus instruments for the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scriptlyx_conversions_total",
		Help: "Conversions performed, by conversion id and result",
	}, []string{"conversion", "result"})

	ConversionInputBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scriptlyx_conversion_input_bytes",
		Help:    "Size of converted input text in bytes",
		Buckets: prometheus.ExponentialBuckets(16, 4, 8),
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scriptlyx_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scriptlyx_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})
)
