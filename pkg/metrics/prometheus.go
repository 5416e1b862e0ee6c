package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	errorsTotal      *prometheus.CounterVec
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	lastPrice        *prometheus.GaugeVec
	wsSubscribers    prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		upstreamRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptoapi_upstream_requests_total",
				Help: "Total number of requests sent to the market data provider",
			},
			[]string{"endpoint", "status"},
		),
		upstreamLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cryptoapi_upstream_request_duration_seconds",
				Help:    "Duration of market data provider requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptoapi_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptoapi_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"resource"},
		),
		cacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptoapi_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"resource"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cryptoapi_last_price",
				Help: "Last observed price for an asset",
			},
			[]string{"asset"},
		),
		wsSubscribers: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "cryptoapi_stream_subscribers",
				Help: "Current number of websocket price stream subscribers",
			},
		),
	}
}

// RecordUpstreamRequest records a request to the market data provider.
func (r *Recorder) RecordUpstreamRequest(endpoint, status string) {
	r.upstreamRequests.WithLabelValues(endpoint, status).Inc()
}

// RecordUpstreamLatency records provider request latency in seconds.
func (r *Recorder) RecordUpstreamLatency(endpoint string, seconds float64) {
	r.upstreamLatency.WithLabelValues(endpoint).Observe(seconds)
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordCacheHit records a cache hit for a resource.
func (r *Recorder) RecordCacheHit(resource string) {
	r.cacheHits.WithLabelValues(resource).Inc()
}

// RecordCacheMiss records a cache miss for a resource.
func (r *Recorder) RecordCacheMiss(resource string) {
	r.cacheMisses.WithLabelValues(resource).Inc()
}

// RecordLastPrice records the last observed price for an asset.
func (r *Recorder) RecordLastPrice(asset string, price float64) {
	r.lastPrice.WithLabelValues(asset).Set(price)
}

// SetStreamSubscribers records the current websocket subscriber count.
func (r *Recorder) SetStreamSubscribers(n int) {
	r.wsSubscribers.Set(float64(n))
}
