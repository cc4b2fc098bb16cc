package create_block

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/blocks"
	"github.com/m04kA/SMC-AgendaService/internal/service/blocks/models"
)

type fakeService struct {
	req *models.CreateBlockRequest
	err error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BlockResponse{ID: uuid.New(), TenantID: req.TenantID, Date: req.Date}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/tenants/{tenantId}/blocks", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tenants/2/blocks", strings.NewReader(body)))
	return rec
}

func TestHandler_Created(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, `{"resourceId":"ana","date":"2026-10-19","startTime":"14:00","durationMinutes":90,"reason":"curso"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(2), svc.req.TenantID)
	assert.Equal(t, domain.TimeOfDay{Hour: 14}, svc.req.StartTime)
	assert.Equal(t, 90, svc.req.DurationMinutes)
	require.NotNil(t, svc.req.ResourceID)
	assert.Equal(t, "ana", *svc.req.ResourceID)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"startTime":"25:00"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: blocks.ErrInvalidInput}, `{"date":"2026-10-19"}`).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: blocks.ErrInternal}, `{"date":"2026-10-19"}`).Code)
}
