package hours

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// HoursRepository источник рабочих часов (репозиторий или кэш поверх него)
type HoursRepository interface {
	Get(ctx context.Context, tenantID int64) (*domain.BusinessHoursConfig, error)
	Upsert(ctx context.Context, cfg *domain.BusinessHoursConfig) (*domain.BusinessHoursConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
