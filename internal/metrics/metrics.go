package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the dispatch and HTTP collectors. A nil *Metrics records nothing.
type Metrics struct {
	dispatchTotal       *prometheus.CounterVec
	deliveriesTotal     *prometheus.CounterVec
	dispatchDuration    prometheus.Histogram
	notifierAttempts    *prometheus.CounterVec
	stuckSending        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		dispatchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "social_dispatch_total",
				Help: "Campaign dispatches partitioned by final status",
			},
			[]string{"status"},
		),
		deliveriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "social_deliveries_total",
				Help: "Per-account deliveries partitioned by platform and outcome",
			},
			[]string{"platform", "outcome"},
		),
		dispatchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "social_dispatch_duration_seconds",
				Help:    "Wall time of one campaign dispatch",
				Buckets: prometheus.DefBuckets,
			},
		),
		notifierAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "social_notifier_attempts_total",
				Help: "Webhook notifier HTTP attempts partitioned by outcome",
			},
			[]string{"outcome"},
		),
		stuckSending: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "social_campaigns_stuck_sending",
				Help: "Campaigns left in sending past the stuck threshold",
			},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (m *Metrics) ObserveDispatch(status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(status).Inc()
	m.dispatchDuration.Observe(duration.Seconds())
}

func (m *Metrics) ObserveDelivery(platform string, success bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.deliveriesTotal.WithLabelValues(platform, outcome).Inc()
}

// ObserveNotifierAttempt counts one HTTP attempt. outcome is "success", "retry", "failure" or "error".
func (m *Metrics) ObserveNotifierAttempt(outcome string) {
	if m == nil {
		return
	}
	m.notifierAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetStuckSending(count int) {
	if m == nil {
		return
	}
	m.stuckSending.Set(float64(count))
}

// Middleware records request counts and latencies keyed by the matched route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}
		m.httpRequestsTotal.With(labels).Inc()
		m.httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}
