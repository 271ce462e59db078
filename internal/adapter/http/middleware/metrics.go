package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const taskCountTimeout = 2 * time.Second

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),
	}

	for _, collector := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RegisterTaskGauge exposes tasks_total, read from count at scrape time.
func RegisterTaskGauge(reg prometheus.Registerer, count func(ctx context.Context) (int64, error)) error {
	gauge := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "tasks_total",
			Help: "Current number of tasks in the system",
		},
		func() float64 {
			ctx, cancel := context.WithTimeout(context.Background(), taskCountTimeout)
			defer cancel()

			n, err := count(ctx)
			if err != nil {
				zap.L().Warn("failed to count tasks for metrics", zap.Error(err))
				return 0
			}
			return float64(n)
		},
	)
	return reg.Register(gauge)
}
