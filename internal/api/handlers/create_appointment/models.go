package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ResourceID    string  `json:"resourceId"`
	ServiceIDs    []int64 `json:"serviceIds"`
	Date          string  `json:"date"`      // "2026-10-16"
	StartTime     string  `json:"startTime"` // "10:00"
	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Force         bool    `json:"force,omitempty"` // только для администратора
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	*models.AppointmentResponse
	Conflict bool `json:"conflict"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateAppointmentRequest) ToUseCaseRequest(tenantID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := domain.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		TenantID:      tenantID,
		ResourceID:    r.ResourceID,
		ServiceIDs:    r.ServiceIDs,
		Date:          date,
		StartTime:     startTime,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
		Force:         r.Force,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		AppointmentResponse: models.FromDomainAppointment(resp.Appointment),
		Conflict:            resp.Conflict,
	}
}
