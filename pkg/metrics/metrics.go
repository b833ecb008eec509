package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label value
const (
	ResultCreated  = "created"
	ResultExisting = "existing"
	ResultVerified = "verified"
	ResultNotFound = "not_found"
	ResultConflict = "conflict"
	ResultError    = "error"
)

// Metrics hold all service collector in own registry, all method is safe on nil receiver
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	accountSignup    *prometheus.CounterVec
	participantJoin  *prometheus.CounterVec
	attendanceVerify *prometheus.CounterVec
}

// NewMetrics create and register collector with given namespace
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP request by route and status"},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency", Buckets: prometheus.DefBuckets},
			[]string{"method", "route"},
		),
		accountSignup: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "account_signup_total", Help: "Total signup attempt by result"},
			[]string{"result"},
		),
		participantJoin: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "participant_join_total", Help: "Total join event by result"},
			[]string{"result"},
		),
		attendanceVerify: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "attendance_verify_total", Help: "Total attendance verification by result"},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration, m.accountSignup, m.participantJoin, m.attendanceVerify,
	)
	return m
}

// Handler exposition endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// EchoMiddleware count and observe every request, route label is the registered path pattern
func (m *Metrics) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// ObserveSignup count signup result
func (m *Metrics) ObserveSignup(result string) {
	if m != nil {
		m.accountSignup.WithLabelValues(result).Inc()
	}
}

// ObserveJoin count join result
func (m *Metrics) ObserveJoin(result string) {
	if m != nil {
		m.participantJoin.WithLabelValues(result).Inc()
	}
}

// ObserveVerify count verification result
func (m *Metrics) ObserveVerify(result string) {
	if m != nil {
		m.attendanceVerify.WithLabelValues(result).Inc()
	}
}
