package business_hours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

const table = "business_hours"

// Repository репозиторий рабочих часов тенантов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает рабочие часы тенанта.
// Значения не валидируются: решение о невалидной конфигурации принимает сервис.
func (r *Repository) Get(ctx context.Context, tenantID int64) (*domain.BusinessHoursConfig, error) {
	query, args, err := psqlbuilder.Select(
		"tenant_id",
		"open_hour",
		"close_hour",
		"step_minutes",
		"open_weekdays",
		"lunch_start",
		"lunch_end",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		cfg       domain.BusinessHoursConfig
		weekdays  []int64
		updatedAt sql.NullTime
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&cfg.TenantID,
		&cfg.OpenHour,
		&cfg.CloseHour,
		&cfg.StepMinutes,
		pq.Array(&weekdays),
		&cfg.LunchStart,
		&cfg.LunchEnd,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan business hours: %v", ErrScanRow, err)
	}

	cfg.OpenWeekdays, err = domain.WeekdaySetFromInts(weekdays)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - open_weekdays: %v", ErrScanRow, err)
	}
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Upsert создает или заменяет рабочие часы тенанта
func (r *Repository) Upsert(ctx context.Context, cfg *domain.BusinessHoursConfig) (*domain.BusinessHoursConfig, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"tenant_id",
			"open_hour",
			"close_hour",
			"step_minutes",
			"open_weekdays",
			"lunch_start",
			"lunch_end",
		).
		Values(
			cfg.TenantID,
			cfg.OpenHour,
			cfg.CloseHour,
			cfg.StepMinutes,
			pq.Array(cfg.OpenWeekdays.Ints()),
			cfg.LunchStart,
			cfg.LunchEnd,
		).
		Suffix(`ON CONFLICT (tenant_id) DO UPDATE SET
			open_hour = EXCLUDED.open_hour,
			close_hour = EXCLUDED.close_hour,
			step_minutes = EXCLUDED.step_minutes,
			open_weekdays = EXCLUDED.open_weekdays,
			lunch_start = EXCLUDED.lunch_start,
			lunch_end = EXCLUDED.lunch_end,
			updated_at = NOW()
			RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	cfg.UpdatedAt = updatedAt.Time
	return cfg, nil
}
