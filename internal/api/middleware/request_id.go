package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const requestIDKey contextKey = "requestID"

// HeaderRequestID заголовок с ID запроса для сквозной трассировки
const HeaderRequestID = "X-Request-ID"

// RequestID проставляет каждому запросу уникальный ID
// Если клиент прислал свой X-Request-ID, он сохраняется
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID возвращает ID запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}
