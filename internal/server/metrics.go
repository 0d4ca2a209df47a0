package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cobraops_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cobraops_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	assignDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cobraops_assign_duration_seconds",
			Help:    "Duration of AssignTargets calls handled by the server",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	assignCobraCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cobraops_assign_cobra_count",
			Help:    "Number of cobras in the bench for each /assign request",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 2500, 5000},
		},
	)

	assignResidualCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cobraops_assign_residual_collisions_total",
			Help: "Total residual collision pairs observed across /assign requests",
		},
	)
)
