package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	blockedRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/blocked"
	"github.com/m04kA/SMC-AgendaService/internal/service/blocks/models"
)

// maxListRangeDays ограничение периода выборки блокировок
const maxListRangeDays = 62

// Service сервис заблокированных интервалов (отпуск мастера, обучение, ремонт)
type Service struct {
	repo   BlockRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(repo BlockRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create блокирует интервал времени для одного мастера или для всех
func (s *Service) Create(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("Create: blocking %s %s for %d min, tenant=%d", req.Date, req.StartTime, req.DurationMinutes, req.TenantID)

	block, err := validateCreate(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created block id=%s", created.ID)
	resp := models.FromDomainBlock(*created)
	return &resp, nil
}

// List возвращает блокировки за период включительно
func (s *Service) List(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}
	if req.To.Sub(req.From) > maxListRangeDays*24*time.Hour {
		return nil, fmt.Errorf("%w: range must not exceed %d days", ErrInvalidInput, maxListRangeDays)
	}

	blocks, err := s.repo.ListForRange(ctx, req.TenantID, req.ResourceID, req.From, req.To)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.BlockListResponse{Blocks: make([]models.BlockResponse, 0, len(blocks))}
	for _, b := range blocks {
		resp.Blocks = append(resp.Blocks, models.FromDomainBlock(b))
	}
	return resp, nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, tenantID int64, id uuid.UUID) error {
	s.logger.Info("Delete: removing block id=%s tenant=%d", id, tenantID)

	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: block id=%s not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateCreate(req *models.CreateBlockRequest) (*domain.BlockedInterval, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if req.StartTime.Minutes()+req.DurationMinutes > domain.MinutesPerDay {
		return nil, fmt.Errorf("%w: block must end within the day", ErrInvalidInput)
	}
	if req.ResourceID != nil && *req.ResourceID == "" {
		return nil, fmt.Errorf("%w: resourceId must not be empty", ErrInvalidInput)
	}

	return &domain.BlockedInterval{
		TenantID:        req.TenantID,
		ResourceID:      req.ResourceID,
		Date:            date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Reason:          req.Reason,
	}, nil
}
