package blocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	Create(ctx context.Context, block *domain.BlockedInterval) (*domain.BlockedInterval, error)
	ListForRange(ctx context.Context, tenantID int64, resourceID *string, from, to time.Time) ([]domain.BlockedInterval, error)
	Delete(ctx context.Context, tenantID int64, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
