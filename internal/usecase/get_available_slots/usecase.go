package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service_catalog"
	"github.com/m04kA/SMC-AgendaService/internal/scheduling"
	"github.com/m04kA/SMC-AgendaService/internal/service/availability"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
)

// UseCase use case для получения слотов мастера на день
type UseCase struct {
	catalog      ServiceCatalog
	availability AvailabilityService
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog ServiceCatalog,
	availability AvailabilityService,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		availability: availability,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%d, resource=%s, services=%v, date=%s",
		req.TenantID, req.ResourceID, req.ServiceIDs, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом (в часовом поясе бизнеса)
	if err := validateDate(req.Date, uc.availability.Today()); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем выбранные услуги
	services, err := uc.catalog.GetByIDs(ctx, req.TenantID, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: services %v not found for tenant=%d", req.ServiceIDs, req.TenantID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	// 4. Суммарная длительность и стоимость
	totals, err := scheduling.Aggregate(services)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to aggregate services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Рассчитываем слоты на суммарную длительность
	result, err := uc.availability.Compute(ctx, availability.Query{
		TenantID:             req.TenantID,
		ResourceID:           req.ResourceID,
		Date:                 req.Date,
		TotalDuration:        totals.TotalDuration,
		ExcludeAppointmentID: req.ExcludeAppointmentID,
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	// 6. Учитываем исход запроса
	switch {
	case result.Closed:
		uc.metrics.IncSlotQuery(metrics.OutcomeClosed)
	case result.Slots.IsFullyBooked():
		uc.metrics.IncSlotQuery(metrics.OutcomeFullyBooked)
	default:
		uc.metrics.IncSlotQuery(metrics.OutcomeAvailable)
	}

	uc.logger.Info("GetAvailableSlots: %d slots (%d available) for tenant=%d, resource=%s, duration=%d, date=%s",
		len(result.Slots.Slots), len(result.Slots.Available()), req.TenantID, req.ResourceID,
		totals.TotalDuration, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:          req.Date,
		ResourceID:    req.ResourceID,
		ServiceIDs:    req.ServiceIDs,
		TotalDuration: totals.TotalDuration,
		TotalPrice:    totals.TotalPrice,
		Closed:        result.Closed,
		HoursSource:   string(result.HoursSource),
		Slots:         result.Slots.Slots,
	}, nil
}
