package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/carhub/booking-service/pkg/metrics"
)

// statusRecorder перехватывает код ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает метрики HTTP запросов
// Путь берётся из шаблона роута, чтобы не плодить лейблы на каждый ID
func MetricsMiddleware(m *metrics.Metrics, serviceName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			m.ObserveHTTPRequest(
				r.Method,
				path,
				strconv.Itoa(recorder.status),
				time.Since(start).Seconds(),
			)
		})
	}
}
