package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/availability"
)

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	// GetByIDs возвращает услуги в порядке ids; отсутствующая услуга - ошибка
	GetByIDs(ctx context.Context, tenantID int64, ids []int64) ([]domain.ServiceItem, error)
}

// AvailabilityService расчет слотов мастера на день (service/availability)
type AvailabilityService interface {
	Compute(ctx context.Context, q availability.Query) (*availability.Result, error)
	Today() time.Time
}

// MetricsRecorder учет исходов запросов слотов
type MetricsRecorder interface {
	IncSlotQuery(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
