package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// CreateBlockRequest запрос на блокировку времени
type CreateBlockRequest struct {
	TenantID        int64            `json:"-"`
	ResourceID      *string          `json:"resourceId,omitempty"` // nil - блокировка для всех мастеров
	Date            string           `json:"date"`                 // "2026-10-16"
	StartTime       domain.TimeOfDay `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Reason          string           `json:"reason"`
}

// ListBlocksRequest запрос на получение блокировок за период
type ListBlocksRequest struct {
	TenantID   int64
	ResourceID *string
	From       time.Time
	To         time.Time
}

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID              uuid.UUID `json:"id"`
	TenantID        int64     `json:"tenantId"`
	ResourceID      *string   `json:"resourceId,omitempty"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Reason          string    `json:"reason"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BlockListResponse ответ со списком блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b domain.BlockedInterval) BlockResponse {
	return BlockResponse{
		ID:              b.ID,
		TenantID:        b.TenantID,
		ResourceID:      b.ResourceID,
		Date:            b.Date.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Reason:          b.Reason,
		CreatedAt:       b.CreatedAt,
	}
}
