package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getCalendar "github.com/m04kA/SMC-AgendaService/internal/usecase/get_calendar"
)

const (
	msgInvalidTenantID = "некорректный ID тенанта"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidView     = "некорректный вид календаря, ожидается day, 3-day или week"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/calendar
// Query params: date (required), view (day | 3-day | week), resourceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/calendar - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	anchor, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/calendar - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		TenantID:   tenantID,
		Anchor:     anchor,
		View:       r.URL.Query().Get("view"),
		ResourceID: handlers.QueryOptionalString(r, "resourceId"),
	})
	if err != nil {
		if errors.Is(err, getCalendar.ErrInvalidInput) {
			h.logger.Warn("GET /tenants/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidView)
			return
		}
		h.logger.Error("GET /tenants/{id}/calendar - Failed to build calendar: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
