package update_business_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/hours"
	"github.com/m04kA/SMC-AgendaService/internal/service/hours/models"
)

type fakeService struct {
	req *models.UpdateHoursRequest
	err error
}

func (f *fakeService) Update(_ context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.HoursResponse{TenantID: req.TenantID, OpenHour: req.OpenHour, Source: models.SourcePersisted}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/tenants/{tenantId}/business-hours", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPut)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/tenants/4/business-hours", strings.NewReader(body)))
	return rec
}

func TestHandler_Success(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, `{"openHour":9,"closeHour":18,"stepMinutes":30,"openWeekdays":["mon","fri"],"lunchStart":"12:00","lunchEnd":"13:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), svc.req.TenantID)
	assert.Equal(t, 9, svc.req.OpenHour)
	assert.True(t, svc.req.OpenWeekdays.Has(time.Friday))
	assert.False(t, svc.req.OpenWeekdays.Has(time.Sunday))
	require.NotNil(t, svc.req.LunchStart)
	assert.Equal(t, domain.TimeOfDay{Hour: 12}, *svc.req.LunchStart)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"openHour":`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"unknown":1}`).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, serve(&fakeService{err: hours.ErrInvalidInput}, `{"openHour":20,"closeHour":8}`).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: hours.ErrInternal}, `{"openHour":8,"closeHour":20}`).Code)
}
