package hours

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

const keyPrefix = "agenda:business_hours:"

// Результаты обращения к кэшу для метрик
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// Cache read-through кэш рабочих часов поверх репозитория.
// Реализует тот же контракт, что и репозиторий, поэтому подставляется вместо него.
// Ошибки Redis не пробрасываются: чтение уходит в репозиторий, ошибка логируется.
type Cache struct {
	client  Client
	repo    Repository
	ttl     time.Duration
	metrics MetricsRecorder
	logger  Logger
}

// New создает кэш рабочих часов
func New(client Client, repo Repository, ttl time.Duration, metrics MetricsRecorder, logger Logger) *Cache {
	return &Cache{
		client:  client,
		repo:    repo,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// Get возвращает рабочие часы из кэша или из репозитория, сохраняя их в кэш.
// Отсутствие конфигурации не кэшируется.
func (c *Cache) Get(ctx context.Context, tenantID int64) (*domain.BusinessHoursConfig, error) {
	key := Key(tenantID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		cfg, decodeErr := decode(data)
		if decodeErr == nil {
			c.metrics.IncCacheLookup(resultHit)
			return cfg, nil
		}
		c.metrics.IncCacheLookup(resultError)
		c.logger.Warn("hours cache: drop undecodable entry %s: %v", key, decodeErr)
	case errors.Is(err, redis.Nil):
		c.metrics.IncCacheLookup(resultMiss)
	default:
		c.metrics.IncCacheLookup(resultError)
		c.logger.Warn("hours cache: get %s: %v", key, err)
	}

	cfg, err := c.repo.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if payload, err := encode(cfg); err != nil {
		c.logger.Warn("hours cache: encode tenant %d: %v", tenantID, err)
	} else if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("hours cache: set %s: %v", key, err)
	}

	return cfg, nil
}

// Upsert сохраняет рабочие часы в репозиторий и инвалидирует кэш тенанта
func (c *Cache) Upsert(ctx context.Context, cfg *domain.BusinessHoursConfig) (*domain.BusinessHoursConfig, error) {
	saved, err := c.repo.Upsert(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := c.client.Del(ctx, Key(cfg.TenantID)).Err(); err != nil {
		c.logger.Warn("hours cache: invalidate tenant %d: %v", cfg.TenantID, err)
	}

	return saved, nil
}

// Key ключ Redis для рабочих часов тенанта
func Key(tenantID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, tenantID)
}

// entry формат записи в Redis
type entry struct {
	TenantID     int64             `json:"tenant_id"`
	OpenHour     int               `json:"open_hour"`
	CloseHour    int               `json:"close_hour"`
	StepMinutes  int               `json:"step_minutes"`
	OpenWeekdays domain.WeekdaySet `json:"open_weekdays"`
	LunchStart   *domain.TimeOfDay `json:"lunch_start,omitempty"`
	LunchEnd     *domain.TimeOfDay `json:"lunch_end,omitempty"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func encode(cfg *domain.BusinessHoursConfig) ([]byte, error) {
	return json.Marshal(entry{
		TenantID:     cfg.TenantID,
		OpenHour:     cfg.OpenHour,
		CloseHour:    cfg.CloseHour,
		StepMinutes:  cfg.StepMinutes,
		OpenWeekdays: cfg.OpenWeekdays,
		LunchStart:   cfg.LunchStart,
		LunchEnd:     cfg.LunchEnd,
		UpdatedAt:    cfg.UpdatedAt,
	})
}

func decode(data []byte) (*domain.BusinessHoursConfig, error) {
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &domain.BusinessHoursConfig{
		TenantID:     e.TenantID,
		OpenHour:     e.OpenHour,
		CloseHour:    e.CloseHour,
		StepMinutes:  e.StepMinutes,
		OpenWeekdays: e.OpenWeekdays,
		LunchStart:   e.LunchStart,
		LunchEnd:     e.LunchEnd,
		UpdatedAt:    e.UpdatedAt,
	}, nil
}
