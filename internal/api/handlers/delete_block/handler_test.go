package delete_block

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AgendaService/internal/service/blocks"
)

type fakeService struct {
	id  uuid.UUID
	err error
}

func (f *fakeService) Delete(_ context.Context, _ int64, id uuid.UUID) error {
	f.id = id
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, blockID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/tenants/{tenantId}/blocks/{blockId}", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/tenants/2/blocks/"+blockID, nil))
	return rec
}

func TestHandler(t *testing.T) {
	id := uuid.New()

	svc := &fakeService{}
	assert.Equal(t, http.StatusNoContent, serve(svc, id.String()).Code)
	assert.Equal(t, id, svc.id)

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "not-a-uuid").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: blocks.ErrBlockNotFound}, id.String()).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: blocks.ErrInternal}, id.String()).Code)
}
