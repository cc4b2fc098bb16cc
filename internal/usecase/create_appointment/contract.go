package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/availability"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// Create создает запись; пересечение с активной записью мастера дает ErrSlotTaken
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetByIDs(ctx context.Context, tenantID int64, ids []int64) ([]domain.ServiceItem, error)
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
