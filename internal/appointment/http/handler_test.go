package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pazurkowo/pet-salon-backend/internal/appointment"
	"github.com/pazurkowo/pet-salon-backend/internal/auth"
	"github.com/pazurkowo/pet-salon-backend/internal/schedule"
)

// fakeService records calls and returns canned results.
type fakeService struct {
	created *appointment.Appointment
	err     error

	gotReq      appointment.BookingRequest
	gotCallerID string
}

func (f *fakeService) Create(_ context.Context, req appointment.BookingRequest) (*appointment.Appointment, error) {
	f.gotReq = req
	return f.created, f.err
}

func (f *fakeService) GetByID(context.Context, string) (*appointment.Appointment, error) {
	return f.created, f.err
}

func (f *fakeService) Update(_ context.Context, _ string, req appointment.BookingRequest, callerID string) (*appointment.Appointment, error) {
	f.gotReq = req
	f.gotCallerID = callerID
	return f.created, f.err
}

func (f *fakeService) Cancel(_ context.Context, _ string, callerID string) error {
	f.gotCallerID = callerID
	return f.err
}

func (f *fakeService) AvailableSlots(_ context.Context, _ time.Time, _ []string) ([]schedule.TimeOfDay, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []schedule.TimeOfDay{540, 555}, nil
}

func (f *fakeService) WeeklySchedule(_ context.Context, startDate time.Time, _ []string) ([]appointment.DaySchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	week := make([]appointment.DaySchedule, 7)
	for i := range week {
		week[i] = appointment.DaySchedule{Date: startDate.AddDate(0, 0, i)}
	}
	return week, nil
}

func (f *fakeService) History(context.Context, string) ([]*appointment.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*appointment.Appointment{f.created}, nil
}

var testJWT = auth.NewJWTManager("test-secret", time.Minute)

func newTestRouter(svc appointment.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewHandler(svc), auth.Required(testJWT))
	return r
}

func authHeader(t *testing.T) string {
	t.Helper()
	token, err := testJWT.Issue("owner-1", "anna@example.com")
	require.NoError(t, err)
	return "Bearer " + token
}

func sampleAppointment() *appointment.Appointment {
	return &appointment.Appointment{
		ID:          "appt-1",
		OwnerID:     "owner-1",
		PetName:     "Reksio",
		Date:        time.Date(2026, 9, 9, 0, 0, 0, 0, time.Local),
		Start:       schedule.TimeOfDay(600),
		Services:    []string{"Strzyżenie"},
		DurationMin: 60,
		Phone:       "123456789",
	}
}

func validBody() map[string]any {
	return map[string]any{
		"pet_name":   "Reksio",
		"date":       "2026-09-09",
		"start_time": "10:00",
		"phone":      "123456789",
		"services":   []string{"Strzyżenie"},
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	svc := &fakeService{created: sampleAppointment()}
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/v1/appointments", validBody(), authHeader(t))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "appt-1", resp.ID)
	require.Equal(t, "10:00", resp.StartTime)
	require.Equal(t, "11:00", resp.EndTime)

	// Owner identity comes from the token, never from the payload.
	require.Equal(t, "owner-1", svc.gotReq.OwnerID)
}

func TestCreateHandlerRequiresAuth(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := doJSON(t, r, http.MethodPost, "/v1/appointments", validBody(), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateHandlerRejectsBadPayload(t *testing.T) {
	r := newTestRouter(&fakeService{created: sampleAppointment()})

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"Missing pet name", func(b map[string]any) { delete(b, "pet_name") }},
		{"Bad date format", func(b map[string]any) { b["date"] = "09/09/2026" }},
		{"Bad start time", func(b map[string]any) { b["start_time"] = "10am" }},
		{"Phone too short", func(b map[string]any) { b["phone"] = "123" }},
		{"Empty services", func(b map[string]any) { b["services"] = []string{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validBody()
			tt.mutate(body)
			w := doJSON(t, r, http.MethodPost, "/v1/appointments", body, authHeader(t))
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateHandlerMapsServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Slot taken", appointment.ErrSlotUnavailable, http.StatusConflict},
		{"Past time", appointment.ErrPastTime, http.StatusBadRequest},
		{"Storage down", appointment.ErrStorageUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeService{err: tt.err})
			w := doJSON(t, r, http.MethodPost, "/v1/appointments", validBody(), authHeader(t))
			require.Equal(t, tt.want, w.Code)
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	svc := &fakeService{created: sampleAppointment()}
	r := newTestRouter(svc)

	id := "7b7f2f0a-3c87-4f19-9f2c-0a57f7a1c001"
	w := doJSON(t, r, http.MethodPut, "/v1/appointments/"+id, validBody(), authHeader(t))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "owner-1", svc.gotCallerID)
}

func TestUpdateHandlerRejectsNonUUID(t *testing.T) {
	r := newTestRouter(&fakeService{created: sampleAppointment()})

	w := doJSON(t, r, http.MethodPut, "/v1/appointments/not-a-uuid", validBody(), authHeader(t))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelHandler(t *testing.T) {
	svc := &fakeService{}
	r := newTestRouter(svc)

	id := "7b7f2f0a-3c87-4f19-9f2c-0a57f7a1c001"
	w := doJSON(t, r, http.MethodDelete, "/v1/appointments/"+id, nil, authHeader(t))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "owner-1", svc.gotCallerID)
}

func TestAvailableSlotsHandler(t *testing.T) {
	r := newTestRouter(&fakeService{})

	// Public endpoint, no token needed.
	w := doJSON(t, r, http.MethodGet, "/v1/availability/slots/2026-09-09?services=Strzyżenie", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "2026-09-09", resp.Date)
	require.Equal(t, []string{"09:00", "09:15"}, resp.Slots)
}

func TestAvailableSlotsHandlerRejectsBadDate(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := doJSON(t, r, http.MethodGet, "/v1/availability/slots/tomorrow", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWeeklyScheduleHandler(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := doJSON(t, r, http.MethodGet, "/v1/availability/week/2026-09-08?services=Strzyżenie", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 7)
	require.Equal(t, "2026-09-08", resp[0].Date)
	require.Equal(t, "2026-09-14", resp[6].Date)
}

func TestHistoryHandler(t *testing.T) {
	r := newTestRouter(&fakeService{created: sampleAppointment()})

	w := doJSON(t, r, http.MethodGet, "/v1/appointments/history", nil, authHeader(t))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []AppointmentResponse `json:"items"`
		Total int                   `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "appt-1", resp.Items[0].ID)
}
