package list_blocks

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/blocks"
	"github.com/m04kA/SMC-AgendaService/internal/service/blocks/models"
)

const (
	msgInvalidTenantID = "некорректный ID тенанта"
	msgInvalidRange    = "нужны from и to в формате YYYY-MM-DD, to не раньше from"
)

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/blocks
// Query params: from, to (required, YYYY-MM-DD), resourceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	from, errFrom := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	to, errTo := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /tenants/{id}/blocks - Invalid range: from=%v, to=%v", errFrom, errTo)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	resp, err := h.service.List(r.Context(), &models.ListBlocksRequest{
		TenantID:   tenantID,
		ResourceID: handlers.QueryOptionalString(r, "resourceId"),
		From:       from,
		To:         to,
	})
	if err != nil {
		if errors.Is(err, blocks.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /tenants/{id}/blocks - Failed to list blocks: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
