package cancel_booking

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
	cancelFn func(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error
}

func (f *fakeBookingService) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	return f.cancelFn(ctx, bookingID, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// doRequest прогоняет запрос через Auth, чтобы ID пользователя попал в контекст
func doRequest(h *Handler, userID string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/42/cancel", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": "42"})
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

// Инициатор отмены берётся из аутентифицированного запроса, а не из тела
func TestHandle_CancelsAsAuthenticatedUser(t *testing.T) {
	var gotUserID int64
	var gotReason string
	svc := &fakeBookingService{
		cancelFn: func(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
			require.Equal(t, int64(42), bookingID)
			gotUserID = req.UserID
			gotReason = req.CancellationReason
			return nil
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(h, "15", `{"cancellationReason": "передумал"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(15), gotUserID)
	assert.Equal(t, "передумал", gotReason)
}

func TestHandle_UserIDInBodyRejected(t *testing.T) {
	svc := &fakeBookingService{
		cancelFn: func(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
			t.Fatal("сервис не должен вызываться")
			return nil
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(h, "1", `{"userId": 2, "cancellationReason": "чужая отмена"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingUserID(t *testing.T) {
	h := NewHandler(&fakeBookingService{}, noopLogger{})

	rec := doRequest(h, "", `{}`)
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
		{name: "cannot cancel", err: bookings.ErrCannotCancel, wantStatus: http.StatusBadRequest},
		{name: "invalid input", err: bookings.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal error", err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBookingService{
				cancelFn: func(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
					return tt.err
				},
			}
			h := NewHandler(svc, noopLogger{})

			rec := doRequest(h, "15", `{}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
