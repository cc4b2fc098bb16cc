package get_business_hours

import (
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
)

const msgInvalidTenantID = "некорректный ID тенанта"

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

// Handle GET /api/v1/tenants/{tenantId}/business-hours
// Всегда 200: при отсутствии или порче конфигурации отдаются значения по умолчанию (поле source)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/business-hours - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.service.Get(r.Context(), tenantID))
}
