package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ImagesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibescape_images_generated_total",
			Help: "Total scene images successfully generated",
		},
		[]string{"provider", "season"},
	)

	ImageFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibescape_image_failures_total",
			Help: "Total failed image generation attempts",
		},
		[]string{"provider"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vibescape_generation_duration_seconds",
			Help:    "Image generation latency in seconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"provider"},
	)

	SeasonsSelected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibescape_seasons_selected_total",
			Help: "Total weighted season draws by outcome",
		},
		[]string{"season"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibescape_http_requests_total",
			Help: "HTTP requests by route pattern and status code",
		},
		[]string{"path", "status"},
	)

	ConnectedViewers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vibescape_connected_viewers",
			Help: "Viewer sessions seen within the session TTL",
		},
	)

	PeakViewers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vibescape_peak_viewers",
			Help: "High-water mark of concurrent viewer sessions",
		},
	)
)
