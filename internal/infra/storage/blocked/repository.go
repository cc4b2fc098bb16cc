package blocked

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

const table = "blocked_intervals"

// Repository репозиторий заблокированных интервалов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет блокировку. ID генерируется, если не задан.
func (r *Repository) Create(ctx context.Context, block *domain.BlockedInterval) (*domain.BlockedInterval, error) {
	if block.ID == uuid.Nil {
		block.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "tenant_id", "resource_id", "block_date", "start_time", "duration_minutes", "reason").
		Values(block.ID, block.TenantID, block.ResourceID, block.Date, block.StartTime, block.DurationMinutes, block.Reason).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	return block, nil
}

// ListForRange получает блокировки тенанта за период [from, to] включительно.
// Если resourceID задан, возвращаются общие блокировки (resource_id IS NULL) и блокировки этого мастера.
func (r *Repository) ListForRange(ctx context.Context, tenantID int64, resourceID *string, from, to time.Time) ([]domain.BlockedInterval, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"tenant_id",
		"resource_id",
		"block_date",
		"start_time",
		"duration_minutes",
		"reason",
		"created_at",
	).
		From(table).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"block_date": from}).
		Where(squirrel.LtOrEq{"block_date": to})

	if resourceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"resource_id": nil},
			squirrel.Eq{"resource_id": *resourceID},
		})
	}

	query, args, err := selectBuilder.OrderBy("block_date ASC, start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]domain.BlockedInterval, 0)
	for rows.Next() {
		var (
			block     domain.BlockedInterval
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&block.ID,
			&block.TenantID,
			&block.ResourceID,
			&block.Date,
			&block.StartTime,
			&block.DurationMinutes,
			&block.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListForRange - scan row: %v", ErrScanRow, err)
		}
		block.CreatedAt = createdAt.Time
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForRange - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete удаляет блокировку тенанта
func (r *Repository) Delete(ctx context.Context, tenantID int64, id uuid.UUID) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}
