package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartpg_http_requests_total",
		Help: "HTTP requests processed, by method, route pattern and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "smartpg_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	ChatFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartpg_chat_fallbacks_total",
		Help: "Chat replies degraded to the fallback apology.",
	})

	NotificationsDispatchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartpg_notifications_dispatched_total",
		Help: "Notification events delivered by the worker.",
	})
)
