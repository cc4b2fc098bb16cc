package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	hoursModels "github.com/m04kA/SMC-AgendaService/internal/service/hours/models"
)

// HoursResolver источник действующих рабочих часов (service/hours)
type HoursResolver interface {
	Resolve(ctx context.Context, tenantID int64) hoursModels.Resolution
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	ListForRange(ctx context.Context, tenantID int64, resourceID *string, from, to time.Time) ([]domain.BlockedInterval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
