package reschedule_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/availability"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Appointment, error)
	// Reschedule сохраняет новые мастера/дату/время; пересечение дает ErrSlotTaken
	Reschedule(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// AvailabilityService расчет слотов мастера на день (service/availability)
type AvailabilityService interface {
	Compute(ctx context.Context, q availability.Query) (*availability.Result, error)
	Today() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
