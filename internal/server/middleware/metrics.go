package middleware

import (
	"net/http"
	"time"
)

// HTTPMetrics определяет интерфейс для учета HTTP запросов
type HTTPMetrics interface {
	RecordHTTPRequest(method string, statusCode int, duration time.Duration)
}

// MetricsMiddleware создает middleware для учета HTTP запросов
// в Prometheus метриках
func MetricsMiddleware(m HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			m.RecordHTTPRequest(r.Method, wrapped.statusCode, time.Since(start))
		})
	}
}
