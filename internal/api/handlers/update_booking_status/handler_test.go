package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhub/booking-service/internal/api/middleware"
	"github.com/carhub/booking-service/internal/service/bookings"
	"github.com/carhub/booking-service/internal/service/bookings/models"
)

type fakeBookingService struct {
	updateStatusFn func(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error
}

func (f *fakeBookingService) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	return f.updateStatusFn(ctx, bookingID, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// doRequest прогоняет запрос через Auth, чтобы ID пользователя попал в контекст
func doRequest(h *Handler, userID string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/42/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": "42"})
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

// Автором перехода считается аутентифицированный пользователь, а не тело запроса
func TestHandle_UpdatesAsAuthenticatedUser(t *testing.T) {
	var gotUserID int64
	var gotStatus string
	svc := &fakeBookingService{
		updateStatusFn: func(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
			require.Equal(t, int64(42), bookingID)
			gotUserID = req.UserID
			gotStatus = req.Status
			return nil
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(h, "7", `{"status": "confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotUserID)
	assert.Equal(t, "confirmed", gotStatus)
}

func TestHandle_UserIDInBodyRejected(t *testing.T) {
	svc := &fakeBookingService{
		updateStatusFn: func(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
			t.Fatal("сервис не должен вызываться")
			return nil
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(h, "1", `{"userId": 2, "status": "confirmed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingUserID(t *testing.T) {
	h := NewHandler(&fakeBookingService{}, noopLogger{})

	rec := doRequest(h, "", `{"status": "confirmed"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "booking not found", err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "access denied", err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "invalid status", err: bookings.ErrInvalidStatus, wantStatus: http.StatusBadRequest},
		{name: "invalid transition", err: bookings.ErrInvalidTransition, wantStatus: http.StatusConflict},
		{name: "internal error", err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBookingService{
				updateStatusFn: func(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
					return tt.err
				},
			}
			h := NewHandler(svc, noopLogger{})

			rec := doRequest(h, "7", `{"status": "confirmed"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
