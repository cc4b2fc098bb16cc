package get_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/scheduling"
	getCalendar "github.com/m04kA/SMC-AgendaService/internal/usecase/get_calendar"
)

type fakeUseCase struct {
	req  *getCalendar.Request
	resp *getCalendar.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	f.req = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/tenants/{tenantId}/calendar", NewHandler(uc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &getCalendar.Response{
		View: scheduling.ViewDay,
		Geometry: scheduling.GridGeometry{
			WindowStartMinutes: 480,
			WindowEndMinutes:   1200,
			StepMinutes:        20,
			RowHeight:          48,
			MinEventHeight:     24,
		},
		Days: []getCalendar.Day{{
			Date: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
			Open: true,
			Events: []scheduling.EventBox{{
				AppointmentID:   3,
				ResourceID:      "ana",
				Start:           domain.TimeOfDay{Hour: 9},
				DurationMinutes: 40,
				Status:          domain.StatusConfirmed,
				Top:             144,
				Height:          96,
			}},
		}},
	}}

	rec := serve(uc, "/api/v1/tenants/2/calendar?date=2026-10-19&view=day&resourceId=ana")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(2), uc.req.TenantID)
	assert.Equal(t, "day", uc.req.View)
	require.NotNil(t, uc.req.ResourceID)
	assert.Equal(t, "ana", *uc.req.ResourceID)

	var body CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, GridResponse{Start: "08:00", End: "20:00", Step: 20, Rows: 36, RowHeight: 48}, body.Grid)
	require.Len(t, body.Days, 1)
	assert.Equal(t, "2026-10-19", body.Days[0].Date)
	require.Len(t, body.Days[0].Events, 1)
	assert.Equal(t, "09:00", body.Days[0].Events[0].StartTime)
	assert.Equal(t, 144.0, body.Days[0].Events[0].Top)
	assert.NotNil(t, body.Days[0].Blocks)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/api/v1/tenants/2/calendar").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/api/v1/tenants/2/calendar?date=tomorrow").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{err: getCalendar.ErrInvalidInput}, "/api/v1/tenants/2/calendar?date=2026-10-19&view=month").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeUseCase{err: getCalendar.ErrInternal}, "/api/v1/tenants/2/calendar?date=2026-10-19").Code)
}
