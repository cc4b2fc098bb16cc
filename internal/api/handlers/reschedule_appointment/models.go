package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/appointments/models"
	rescheduleAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/reschedule_appointment"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	ResourceID *string `json:"resourceId,omitempty"`
	Force      bool    `json:"force,omitempty"`
}

// RescheduleAppointmentResponse HTTP response model
type RescheduleAppointmentResponse struct {
	*models.AppointmentResponse
	Conflict bool `json:"conflict"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(tenantID, appointmentID int64) (*rescheduleAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := domain.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		TenantID:      tenantID,
		AppointmentID: appointmentID,
		Date:          date,
		StartTime:     startTime,
		ResourceID:    r.ResourceID,
		Force:         r.Force,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *RescheduleAppointmentResponse {
	return &RescheduleAppointmentResponse{
		AppointmentResponse: models.FromDomainAppointment(resp.Appointment),
		Conflict:            resp.Conflict,
	}
}
