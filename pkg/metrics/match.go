package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the match recommendation HTTP handler
	MatchRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "match_request_latency_seconds",
		Help:    "Latency of the vehicle match endpoint",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of match requests served
	MatchRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "match_requests_total",
		Help: "Total number of vehicle match requests",
	})

	// Cache hits when serving match results from Redis
	MatchCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "match_cache_hits_total",
		Help: "Match requests answered from the Redis result cache",
	})
)

func Init() {
	prometheus.MustRegister(
		MatchRequestDuration,
		MatchRequestsTotal,
		MatchCacheHitsTotal,
	)
}
