package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTenantID   = "некорректный ID тенанта"
	msgMissingResourceID = "ID мастера обязателен"
	msgMissingServiceIDs = "нужно выбрать хотя бы одну услугу (serviceIds)"
	msgInvalidServiceIDs = "некорректный список услуг, ожидается serviceIds=1,2"
	msgInvalidExcludeID  = "некорректный excludeAppointmentId"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast        = "дата в прошлом"
	msgServiceNotFound   = "услуга не найдена"
	msgInvalidSlotsQuery = "некорректный запрос слотов"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/resources/{resourceId}/slots
// Query params: date (required, YYYY-MM-DD), serviceIds (required, 1,2,3), excludeAppointmentId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/resources/{id}/slots - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	resourceID := mux.Vars(r)["resourceId"]
	if resourceID == "" {
		handlers.RespondBadRequest(w, msgMissingResourceID)
		return
	}

	serviceIDs, err := handlers.QueryInt64List(r, "serviceIds")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/resources/{id}/slots - Invalid service IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}
	if len(serviceIDs) == 0 {
		handlers.RespondBadRequest(w, msgMissingServiceIDs)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/resources/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{
		TenantID:   tenantID,
		ResourceID: resourceID,
		ServiceIDs: serviceIDs,
		Date:       date,
	}

	if raw := r.URL.Query().Get("excludeAppointmentId"); raw != "" {
		excludeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		req.ExcludeAppointmentID = &excludeID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /tenants/{id}/resources/{id}/slots - Service not found: tenant_id=%d, services=%v", tenantID, serviceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/resources/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotsQuery)

		default:
			h.logger.Error("GET /tenants/{id}/resources/{id}/slots - Failed to get slots: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
