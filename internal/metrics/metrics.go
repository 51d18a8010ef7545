// Package metrics mengumpulkan metrik Prometheus untuk alur approval,
// perhitungan gaji, outbox, dan HTTP.
//
// Semua method aman dipanggil pada *Collector nil, jadi service bisa
// dibangun tanpa metrik (misalnya di unit test).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hrms"

type Collector struct {
	registry *prometheus.Registry

	requestsCreated    *prometheus.CounterVec
	requestTransitions *prometheus.CounterVec

	salaryComputations *prometheus.CounterVec
	salaryLatency      prometheus.Histogram

	outboxPublished *prometheus.CounterVec
	outboxFailed    *prometheus.CounterVec

	notificationsStored prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_created_total",
			Help:      "Total number of employee requests created",
		}, []string{"type"}),
		requestTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_transitions_total",
			Help:      "Approval workflow actions by action and outcome",
		}, []string{"action", "outcome"}),
		salaryComputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "salary_computations_total",
			Help:      "Salary computations by outcome",
		}, []string{"outcome"}),
		salaryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "salary_computation_seconds",
			Help:      "Latency of salary computation including store reads",
			Buckets:   prometheus.DefBuckets,
		}),
		outboxPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Outbox events published to kafka",
		}, []string{"topic"}),
		outboxFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_failed_total",
			Help:      "Outbox events that failed to publish",
		}, []string{"topic"}),
		notificationsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_stored_total",
			Help:      "Notifications stored from consumed events",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	c.registry.MustRegister(
		c.requestsCreated,
		c.requestTransitions,
		c.salaryComputations,
		c.salaryLatency,
		c.outboxPublished,
		c.outboxFailed,
		c.notificationsStored,
		c.httpRequests,
		c.httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

func (c *Collector) RecordRequestCreated(requestType string) {
	if c == nil {
		return
	}
	c.requestsCreated.WithLabelValues(requestType).Inc()
}

// RecordTransition: action = approve|reject, outcome = advanced|approved|rejected|
// forbidden|invalid_state|conflict|not_found|error.
func (c *Collector) RecordTransition(action, outcome string) {
	if c == nil {
		return
	}
	c.requestTransitions.WithLabelValues(action, outcome).Inc()
}

func (c *Collector) RecordSalaryComputation(outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.salaryComputations.WithLabelValues(outcome).Inc()
	c.salaryLatency.Observe(elapsed.Seconds())
}

func (c *Collector) RecordOutboxPublished(topic string) {
	if c == nil {
		return
	}
	c.outboxPublished.WithLabelValues(topic).Inc()
}

func (c *Collector) RecordOutboxFailed(topic string) {
	if c == nil {
		return
	}
	c.outboxFailed.WithLabelValues(topic).Inc()
}

func (c *Collector) RecordNotificationStored() {
	if c == nil {
		return
	}
	c.notificationsStored.Inc()
}

// Handler expose registry dalam format Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// GinMiddleware mencatat jumlah dan latensi request per route template.
func (c *Collector) GinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if c == nil {
			ctx.Next()
			return
		}
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		c.httpRequests.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.httpLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
