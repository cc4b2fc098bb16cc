package update_appointment_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/service/appointments"
	"github.com/m04kA/SMC-AgendaService/internal/service/appointments/models"
)

type fakeService struct {
	req *models.UpdateStatusRequest
	err error
}

func (f *fakeService) UpdateStatus(_ context.Context, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: req.AppointmentID, Status: req.Status}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/tenants/{tenantId}/appointments/{appointmentId}/status", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/tenants/1/appointments/8/status", strings.NewReader(body)))
	return rec
}

func TestHandler_Success(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, `{"status":"completed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "completed", svc.req.Status)
	assert.Equal(t, int64(8), svc.req.AppointmentID)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"bad status", appointments.ErrInvalidInput, http.StatusBadRequest},
		{"terminal", appointments.ErrInvalidTransition, http.StatusConflict},
		{"missing", appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"internal", appointments.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, serve(&fakeService{err: tt.err}, `{"status":"confirmed"}`).Code)
		})
	}
}
