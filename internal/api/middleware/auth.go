package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type contextKey string

const userIDKey contextKey = "userID"

// HeaderUserID заголовок с ID пользователя
// Аутентификацию выполняет API gateway, сервис доверяет заголовку
const HeaderUserID = "X-User-ID"

// Auth извлекает ID пользователя из заголовка X-User-ID и кладёт его в контекст
// Запросы без корректного заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			http.Error(w, "missing "+HeaderUserID+" header", http.StatusUnauthorized)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			http.Error(w, "invalid "+HeaderUserID+" header", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
