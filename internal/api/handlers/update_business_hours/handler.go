package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/hours"
	"github.com/m04kA/SMC-AgendaService/internal/service/hours/models"
)

const (
	msgInvalidTenantID    = "некорректный ID тенанта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHours       = "некорректные рабочие часы"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/tenants/{tenantId}/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("PUT /tenants/{id}/business-hours - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	var req models.UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tenants/{id}/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.TenantID = tenantID

	resp, err := h.service.Update(r.Context(), &req)
	if err != nil {
		if errors.Is(err, hours.ErrInvalidInput) {
			h.logger.Warn("PUT /tenants/{id}/business-hours - Invalid hours: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidHours+": "+err.Error())
			return
		}
		h.logger.Error("PUT /tenants/{id}/business-hours - Failed to update: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /tenants/{id}/business-hours - Updated: tenant_id=%d", tenantID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
