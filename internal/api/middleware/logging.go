package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// AccessLogger интерфейс для логирования HTTP запросов
type AccessLogger interface {
	Info(format string, v ...interface{})
}

// AccessLog логирует каждый запрос с его request ID
// Ставится после RequestID, иначе request_id будет пустым
func AccessLog(logger AccessLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			requestID, _ := GetRequestID(r.Context())
			logger.Info("%s %s - status=%d, duration=%s, request_id=%s",
				r.Method, r.URL.Path, recorder.status, time.Since(start), requestID)
		})
	}
}
