package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "newsroom_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// CacheLookups counts article cache lookups by result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_cache_lookups_total",
		Help: "Total number of cache lookups by result",
	}, []string{"result"})

	// ArticlesWritten counts successful article writes by operation.
	ArticlesWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_articles_written_total",
		Help: "Total number of article writes by operation",
	}, []string{"operation"})

	// CommentsCreated counts persisted comments.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "newsroom_comments_created_total",
		Help: "Total number of comments created",
	})

	// AuthEvents counts sign-up, login and logout outcomes.
	AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_auth_events_total",
		Help: "Total number of authentication events by type and result",
	}, []string{"event", "result"})

	// OwnershipDenials counts mutations refused because the caller is not the author.
	OwnershipDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_ownership_denials_total",
		Help: "Total number of article operations refused for non-authors",
	}, []string{"operation"})
)
