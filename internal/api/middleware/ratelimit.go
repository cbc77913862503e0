package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiterLogger интерфейс для логирования rate limiter
type RateLimiterLogger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RateLimiter ограничивает частоту запросов по фиксированному окну
// Ключ собирается из IP клиента (или X-User-ID, если запрос аутентифицирован)
type RateLimiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
	prefix string
	logger RateLimiterLogger
}

// NewRateLimiter создает rate limiter с лимитом limit запросов за window
func NewRateLimiter(rdb *redis.Client, limit int64, window time.Duration, logger RateLimiterLogger) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: "ratelimit",
		logger: logger,
	}
}

// Middleware возвращает HTTP middleware с ограничением частоты запросов
// При недоступности Redis запросы пропускаются: лимитер не должен ронять API
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.key(r)

		count, err := rl.rdb.Incr(r.Context(), key).Result()
		if err != nil {
			rl.logger.Warn("ratelimit: redis unavailable, passing request through: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		// Окно задаётся при первом запросе и не продлевается
		if count == 1 {
			if err := rl.rdb.PExpire(r.Context(), key, rl.window).Err(); err != nil {
				rl.logger.Error("ratelimit: failed to set window expiry for %s: %v", key, err)
			}
		}

		if count > rl.limit {
			rl.logger.Warn("ratelimit: limit exceeded for %s (%d/%d)", key, count, rl.limit)
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// key собирает ключ лимитера для запроса
func (rl *RateLimiter) key(r *http.Request) string {
	if userID := r.Header.Get(HeaderUserID); userID != "" {
		return fmt.Sprintf("%s:user:%s", rl.prefix, userID)
	}
	return fmt.Sprintf("%s:ip:%s", rl.prefix, clientIP(r))
}

// clientIP возвращает IP клиента с учётом прокси
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}
