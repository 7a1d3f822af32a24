package server

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jdiff/shamsi-calculator/internal/domain"
)

type metrics struct {
	registry        *prometheus.Registry
	linesTotal      *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		linesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jdiff_lines_total",
				Help: "Total number of processed input lines by outcome",
			},
			[]string{"outcome"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jdiff_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jdiff_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
	m.registry.MustRegister(m.linesTotal, m.requestsTotal, m.requestDuration, collectors.NewGoCollector())
	return m
}

// observeLines counts each line result by outcome. Safe on a nil receiver.
func (m *metrics) observeLines(results []domain.LineResult) {
	if m == nil {
		return
	}
	for _, r := range results {
		m.linesTotal.WithLabelValues(string(r.Outcome)).Inc()
	}
}

// setupMetrics configures Prometheus metrics
func (s *Server) setupMetrics() {
	s.metrics = newMetrics()
	m := s.metrics

	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// resolve the status before recording it
				c.Error(err)
				err = nil
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.requestsTotal.WithLabelValues(
				c.Request().Method,
				path,
				strconv.Itoa(c.Response().Status),
			).Inc()
			m.requestDuration.WithLabelValues(
				c.Request().Method,
				path,
			).Observe(time.Since(start).Seconds())

			return err
		}
	})

	handler := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	s.echo.GET(s.config.Metrics.Path, echo.WrapHandler(handler))
}
