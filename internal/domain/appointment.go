package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// ParseAppointmentStatus validates a status coming from the API.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(s); status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Appointment is a customer booking with one resource (staff member)
type Appointment struct {
	ID              int64
	TenantID        int64
	ResourceID      string
	ServiceIDs      []int64
	Date            time.Time
	StartTime       TimeOfDay
	DurationMinutes int // sum of the selected services
	TotalPrice      decimal.Decimal
	Status          AppointmentStatus
	Forced          bool // deliberately overlaps another active appointment of the resource

	CustomerName  string
	CustomerPhone *string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment can be moved
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status may change to next.
// Completed, cancelled and no_show are terminal.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled || next == StatusNoShow
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled || next == StatusNoShow
	default:
		return false
	}
}

// Interval returns the time the appointment occupies on its day.
func (a *Appointment) Interval() BookedInterval {
	return BookedInterval{
		StartMinutes:    a.StartTime.Minutes(),
		DurationMinutes: a.DurationMinutes,
		ResourceID:      a.ResourceID,
	}
}

// BookedInterval is the time an existing appointment occupies for a resource.
type BookedInterval struct {
	StartMinutes    int
	DurationMinutes int
	ResourceID      string
}

// EndMinutes returns the exclusive end in minutes of day.
func (b BookedInterval) EndMinutes() int {
	return b.StartMinutes + b.DurationMinutes
}

// BookedIntervals derives the occupied intervals of appointments.
// Inactive appointments and the one with id excludeID (when set) are skipped.
func BookedIntervals(appointments []*Appointment, excludeID *int64) []BookedInterval {
	out := make([]BookedInterval, 0, len(appointments))
	for _, a := range appointments {
		if a == nil || !a.IsActive() {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		out = append(out, a.Interval())
	}
	return out
}

// AppointmentsFilter фильтр для выборки записей тенанта
type AppointmentsFilter struct {
	TenantID        int64      // Обязательный параметр
	ResourceID      *string    // Фильтр по мастеру (nil - все мастера)
	StartDate       *time.Time // Начало периода включительно
	EndDate         *time.Time // Конец периода включительно
	ExcludeID       *int64     // Запись, которую не нужно учитывать (перенос)
	IncludeInactive bool       // Включать ли отмененные и no-show
}
