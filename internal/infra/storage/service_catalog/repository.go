package service_catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDs получает услуги тенанта в порядке ids.
// Повторяющиеся id допустимы (услуга выбрана дважды) и возвращаются столько же раз.
func (r *Repository) GetByIDs(ctx context.Context, tenantID int64, ids []int64) ([]domain.ServiceItem, error) {
	if len(ids) == 0 {
		return []domain.ServiceItem{}, nil
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"duration_minutes",
		"price",
	).
		From("service_catalog").
		Where(squirrel.Eq{"tenant_id": tenantID, "id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byID := make(map[int64]domain.ServiceItem, len(ids))
	for rows.Next() {
		var item domain.ServiceItem
		if err := rows.Scan(&item.ID, &item.TenantID, &item.Name, &item.DurationMinutes, &item.Price); err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}
		byID[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	items := make([]domain.ServiceItem, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrServiceNotFound, id)
		}
		items = append(items, item)
	}

	return items, nil
}
