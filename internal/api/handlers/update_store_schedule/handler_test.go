package update_store_schedule

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
	"github.com/carhub/booking-service/internal/service/schedule"
	"github.com/carhub/booking-service/internal/service/schedule/models"
)

type fakeScheduleService struct {
	replaceFn func(ctx context.Context, storeID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

func (f *fakeScheduleService) Replace(ctx context.Context, storeID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	return f.replaceFn(ctx, storeID, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"days": [
		{"weekday": "monday", "openTime": "09:00", "closeTime": "18:00"}
	]
}`

// doRequest прогоняет запрос через Auth, чтобы ID пользователя попал в контекст
func doRequest(h *Handler, userID string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/stores/3/schedule", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"storeId": "3"})
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

// Автором изменения считается аутентифицированный пользователь, а не тело запроса
func TestHandle_ReplacesAsAuthenticatedUser(t *testing.T) {
	var gotUserID int64
	svc := &fakeScheduleService{
		replaceFn: func(ctx context.Context, storeID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
			require.Equal(t, int64(3), storeID)
			gotUserID = req.UserID
			return &models.ScheduleResponse{
				StoreID: storeID,
				Days: []models.DayScheduleResponse{
					{Weekday: "monday", OpenTime: "09:00", CloseTime: "18:00"},
				},
			}, nil
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(h, "7", validBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotUserID)
}

func TestHandle_UserIDInBodyRejected(t *testing.T) {
	svc := &fakeScheduleService{
		replaceFn: func(ctx context.Context, storeID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
			t.Fatal("сервис не должен вызываться")
			return nil, nil
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(h, "7", `{"userId": 2, "days": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingUserID(t *testing.T) {
	h := NewHandler(&fakeScheduleService{}, noopLogger{})

	rec := doRequest(h, "", validBody)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "store not found", err: schedule.ErrStoreNotFound, wantStatus: http.StatusNotFound},
		{name: "access denied", err: schedule.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "invalid schedule", err: schedule.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal error", err: schedule.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeScheduleService{
				replaceFn: func(ctx context.Context, storeID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
					return nil, tt.err
				},
			}
			h := NewHandler(svc, noopLogger{})

			rec := doRequest(h, "7", validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
