package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse модель ошибки HTTP API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DecodeJSON декодирует тело запроса в структуру
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return nil
}

// RespondJSON отправляет успешный JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload != nil {
		// Ошибку кодирования в уже начатый ответ вернуть клиенту нельзя
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError отправляет JSON ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// RespondBadRequest отправляет ответ 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound отправляет ответ 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondUnauthorized отправляет ответ 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden отправляет ответ 403 Forbidden
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondInternalError отправляет ответ 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
