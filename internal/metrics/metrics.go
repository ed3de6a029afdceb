// Package metrics khai báo các Prometheus collector của service và handler /metrics.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentiment_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ReportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentiment_report_duration_seconds",
			Help:    "Time spent building a report, store round trips included",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"report", "outcome"},
	)

	SummarizerCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_summarizer_calls_total",
			Help: "Summarization calls by outcome (ok, error, open)",
		},
		[]string{"outcome"},
	)

	AuthEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_auth_events_total",
			Help: "Authentication events by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	registerOnce sync.Once
)

// Init đăng ký collectors vào default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(ReportDuration)
		prometheus.MustRegister(SummarizerCalls)
		prometheus.MustRegister(AuthEvents)
	})
}

// Outcome đổi error thành nhãn "ok" / "error".
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveReport ghi thời gian build một report.
func ObserveReport(report string, start time.Time, err error) {
	ReportDuration.WithLabelValues(report, Outcome(err)).Observe(time.Since(start).Seconds())
}

// Middleware đo số request và latency theo route pattern (không theo path thật để tránh bùng nổ label).
func Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		route := c.Route().Path
		method := c.Method()
		HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler trả về handler phục vụ /metrics.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
