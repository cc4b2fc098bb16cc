package domain

import "time"

// Default business hours, used when a tenant has no (valid) configuration
const (
	DefaultOpenHour    = 8
	DefaultCloseHour   = 20
	DefaultStepMinutes = 20
)

// DefaultOpenWeekdays is Monday through Saturday.
var DefaultOpenWeekdays = NewWeekdaySet(
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
)

// Business validation constants
const (
	MinStepMinutes              = 5
	MaxStepMinutes              = 240
	MaxServiceDurationMinutes   = 720 // 12 hours
	MaxServicesPerAppointment   = 10
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 120
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы записей, которые не занимают время в расписании
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses статусы записей, которые занимают время в расписании
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
