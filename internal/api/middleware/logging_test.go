package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	lines []string
}

func (l *captureLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestAccessLog(t *testing.T) {
	t.Run("logs request with request id", func(t *testing.T) {
		logger := &captureLogger{}
		handler := RequestID(AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Len(t, logger.lines, 1)
		assert.Contains(t, logger.lines[0], "POST /api/v1/bookings")
		assert.Contains(t, logger.lines[0], "status=201")
		assert.Contains(t, logger.lines[0], "request_id=req-123")
	})

	t.Run("generates request id when absent", func(t *testing.T) {
		logger := &captureLogger{}
		handler := RequestID(AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/3/schedule", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Len(t, logger.lines, 1)
		assert.Contains(t, logger.lines[0], "status=200")
		assert.Contains(t, logger.lines[0], "request_id="+rec.Header().Get(HeaderRequestID))
	})
}
