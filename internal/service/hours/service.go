package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/business_hours"
	"github.com/m04kA/SMC-AgendaService/internal/service/hours/models"
)

// Service сервис рабочих часов тенантов
type Service struct {
	repo   HoursRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(repo HoursRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Resolve возвращает действующие рабочие часы тенанта и никогда не завершается ошибкой.
// Отсутствие конфигурации - штатный путь к значениям по умолчанию.
// Невалидная конфигурация и недоступное хранилище тоже дают значения по умолчанию,
// но логируются отдельно, чтобы их можно было отличить от "конфигурации нет".
func (s *Service) Resolve(ctx context.Context, tenantID int64) models.Resolution {
	cfg, err := s.repo.Get(ctx, tenantID)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Info("Resolve: no business hours for tenant=%d, using defaults", tenantID)
			return models.Resolution{Config: domain.DefaultBusinessHours(tenantID), Source: models.SourceDefault}
		}
		s.logger.Error("Resolve: failed to load business hours for tenant=%d, using defaults: %v", tenantID, err)
		return models.Resolution{Config: domain.DefaultBusinessHours(tenantID), Source: models.SourceUnavailable}
	}

	if err := cfg.Validate(); err != nil {
		s.logger.Warn("Resolve: invalid business hours for tenant=%d, using defaults: %v", tenantID, err)
		return models.Resolution{Config: domain.DefaultBusinessHours(tenantID), Source: models.SourceInvalid}
	}

	return models.Resolution{Config: *cfg, Source: models.SourcePersisted}
}

// Get возвращает действующие рабочие часы в виде DTO
func (s *Service) Get(ctx context.Context, tenantID int64) *models.HoursResponse {
	return models.FromResolution(s.Resolve(ctx, tenantID))
}

// Update заменяет рабочие часы тенанта
func (s *Service) Update(ctx context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	s.logger.Info("Update: updating business hours for tenant=%d", req.TenantID)

	cfg := req.ToDomain()
	if err := validateHours(cfg); err != nil {
		s.logger.Warn("Update: validation failed for tenant=%d: %v", req.TenantID, err)
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("Update: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated business hours for tenant=%d", req.TenantID)
	return models.FromResolution(models.Resolution{Config: *saved, Source: models.SourcePersisted}), nil
}

// validateHours инварианты конфигурации плюс ограничения API на шаг сетки
func validateHours(cfg *domain.BusinessHoursConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if cfg.StepMinutes < domain.MinStepMinutes || cfg.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: stepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	return nil
}
