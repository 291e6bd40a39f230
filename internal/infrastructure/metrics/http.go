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

// HTTPMetrics registra contadores e latência das requisições HTTP e
// eventos do ciclo de vida de usuários
type HTTPMetrics struct {
	gatherer prometheus.Gatherer
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	users    *prometheus.CounterVec
}

// NewRegistry cria um registry com os coletores de runtime do Go e do processo
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewHTTPMetrics registra as métricas no registry informado
func NewHTTPMetrics(reg *prometheus.Registry) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	users := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "users_lifecycle_events_total",
		Help: "User lifecycle events (created, soft_deleted, deleted).",
	}, []string{"event"})
	reg.MustRegister(requests, duration, users)

	return &HTTPMetrics{
		gatherer: reg,
		requests: requests,
		duration: duration,
		users:    users,
	}
}

// Middleware mede cada requisição pelo template da rota (ex.: /api/users/:userId)
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || m.requests == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		m.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// UserEvent incrementa o contador do evento informado
func (m *HTTPMetrics) UserEvent(event string) {
	if m == nil || m.users == nil {
		return
	}
	if event == "" {
		event = "unknown"
	}
	m.users.WithLabelValues(event).Inc()
}

// Handler expõe as métricas no formato do Prometheus
func (m *HTTPMetrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
