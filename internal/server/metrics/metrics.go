// Package metrics собирает и публикует Prometheus метрики сервера.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector собирает метрики HTTP слоя и подсистемы аутентификации
type Collector struct {
	httpRequests   *prometheus.CounterVec
	httpLatency    prometheus.Histogram
	authRejections *prometheus.CounterVec
	tokensIssued   prometheus.Counter
}

// NewCollector создает Collector и регистрирует метрики в реестре
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inkquiry_http_requests_total",
			Help: "Количество HTTP запросов по методу и статусу",
		}, []string{"method", "status_code"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "inkquiry_http_request_duration_seconds",
			Help:    "Длительность обработки HTTP запроса",
			Buckets: prometheus.DefBuckets,
		}),
		authRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inkquiry_auth_rejections_total",
			Help: "Количество отказов аутентификации по причине",
		}, []string{"reason"}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inkquiry_tokens_issued_total",
			Help: "Количество выданных access токенов",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.authRejections,
		c.tokensIssued,
	)

	return c
}

// RecordHTTPRequest учитывает завершенный HTTP запрос
func (c *Collector) RecordHTTPRequest(method string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	c.httpLatency.Observe(duration.Seconds())
}

// RecordAuthRejection учитывает отказ аутентификации.
// reason — внутренний kind отказа, наружу клиенту он не уходит
func (c *Collector) RecordAuthRejection(reason string) {
	c.authRejections.WithLabelValues(reason).Inc()
}

// RecordTokenIssued учитывает выдачу access токена
func (c *Collector) RecordTokenIssued() {
	c.tokensIssued.Inc()
}

// Handler возвращает HTTP handler для Prometheus scrape
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
