package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	TenantID           int64   `json:"-"`
	AppointmentID      int64   `json:"-"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса записи (confirmed, completed, no_show)
type UpdateStatusRequest struct {
	TenantID      int64  `json:"-"`
	AppointmentID int64  `json:"-"`
	Status        string `json:"status"`
}

// ListAppointmentsRequest запрос на получение записей тенанта
type ListAppointmentsRequest struct {
	TenantID        int64
	ResourceID      *string    // Фильтр по мастеру (опционально)
	StartDate       *time.Time // Начало периода (опционально)
	EndDate         *time.Time // Конец периода (опционально)
	IncludeInactive bool       // Включить отмененные и no-show
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() domain.AppointmentsFilter {
	return domain.AppointmentsFilter{
		TenantID:        r.TenantID,
		ResourceID:      r.ResourceID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                 int64           `json:"id"`
	TenantID           int64           `json:"tenantId"`
	ResourceID         string          `json:"resourceId"`
	ServiceIDs         []int64         `json:"serviceIds"`
	Date               string          `json:"date"`      // "2026-10-16"
	StartTime          string          `json:"startTime"` // "10:00"
	EndTime            string          `json:"endTime"`
	DurationMinutes    int             `json:"durationMinutes"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
	Status             string          `json:"status"`
	Forced             bool            `json:"forced,omitempty"`
	CustomerName       string          `json:"customerName"`
	CustomerPhone      *string         `json:"customerPhone,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	CancellationReason *string         `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time      `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                 a.ID,
		TenantID:           a.TenantID,
		ResourceID:         a.ResourceID,
		ServiceIDs:         a.ServiceIDs,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		EndTime:            domain.TimeOfDayFromMinutes(a.Interval().EndMinutes()).String(),
		DurationMinutes:    a.DurationMinutes,
		TotalPrice:         a.TotalPrice,
		Status:             string(a.Status),
		Forced:             a.Forced,
		CustomerName:       a.CustomerName,
		CustomerPhone:      a.CustomerPhone,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CancelledAt:        a.CancelledAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}
