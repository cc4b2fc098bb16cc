package hours

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Client подмножество redis.Cmdable, которое использует кэш
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Repository источник рабочих часов (storage/business_hours)
type Repository interface {
	Get(ctx context.Context, tenantID int64) (*domain.BusinessHoursConfig, error)
	Upsert(ctx context.Context, cfg *domain.BusinessHoursConfig) (*domain.BusinessHoursConfig, error)
}

// MetricsRecorder счетчик обращений к кэшу
type MetricsRecorder interface {
	IncCacheLookup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
