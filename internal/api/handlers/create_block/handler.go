package create_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/blocks"
	"github.com/m04kA/SMC-AgendaService/internal/service/blocks/models"
)

const (
	msgInvalidTenantID    = "некорректный ID тенанта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBlock       = "некорректная блокировка"
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

// Handle POST /api/v1/tenants/{tenantId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	var req models.CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.TenantID = tenantID

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, blocks.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidBlock+": "+err.Error())
			return
		}
		h.logger.Error("POST /tenants/{id}/blocks - Failed to create block: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /tenants/{id}/blocks - Block created: block_id=%s, tenant_id=%d", resp.ID, tenantID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
