package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service_catalog"
	"github.com/m04kA/SMC-AgendaService/internal/scheduling"
	"github.com/m04kA/SMC-AgendaService/internal/service/availability"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         ServiceCatalog
	availability    AvailabilityService
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog ServiceCatalog,
	availability AvailabilityService,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		availability:    availability,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка слота здесь - быстрый отказ; гонку двух одновременных записей решает
// exclusion constraint в БД (ErrSlotTaken).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: tenant=%d, resource=%s, services=%v, date=%s, time=%s, force=%t",
		req.TenantID, req.ResourceID, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.StartTime, req.Force)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	if err := validateDate(req.Date, uc.availability.Today()); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем выбранные услуги
	services, err := uc.catalog.GetByIDs(ctx, req.TenantID, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: services %v not found for tenant=%d", req.ServiceIDs, req.TenantID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	// 4. Суммарная длительность и стоимость
	totals, err := scheduling.Aggregate(services)
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to aggregate services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Пересчитываем слоты на суммарную длительность и проверяем выбранный
	result, err := uc.availability.Compute(ctx, availability.Query{
		TenantID:      req.TenantID,
		ResourceID:    req.ResourceID,
		Date:          req.Date,
		TotalDuration: totals.TotalDuration,
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateAppointment: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	if err := checkSlot(result, req.StartTime, totals.TotalDuration); err != nil {
		if !req.Force {
			uc.logger.Warn("CreateAppointment: slot %s rejected for resource=%s on %s: %v",
				req.StartTime, req.ResourceID, req.Date.Format(domain.DateFormat), err)
			return nil, err
		}
		uc.logger.Warn("CreateAppointment: forcing appointment at %s for resource=%s past slot check: %v",
			req.StartTime, req.ResourceID, err)
	}

	// 6. Пересечения с записями и блокировками мастера.
	// forced ставится только при пересечении с записью: такую строку exclusion constraint иначе отклонит
	occupancy := result.Occupancy(req.StartTime, totals.TotalDuration)

	// 7. Создаем запись
	appt := &domain.Appointment{
		TenantID:        req.TenantID,
		ResourceID:      req.ResourceID,
		ServiceIDs:      req.ServiceIDs,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: totals.TotalDuration,
		TotalPrice:      totals.TotalPrice,
		Status:          domain.StatusPending,
		Forced:          req.Force && occupancy.Booking,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   req.CustomerPhone,
		Notes:           req.Notes,
	}

	created, err := uc.appointmentRepo.Create(ctx, appt)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: slot %s taken concurrently for resource=%s on %s",
				req.StartTime, req.ResourceID, req.Date.Format(domain.DateFormat))
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d, tenant=%d, resource=%s, forced=%t",
		created.ID, created.TenantID, created.ResourceID, created.Forced)

	return &Response{Appointment: created, Conflict: occupancy.Any()}, nil
}

// checkSlot сверяет выбранное время со списком слотов; ошибка описывает причину отказа
func checkSlot(result *availability.Result, start domain.TimeOfDay, totalDuration int) error {
	if result.Closed {
		return ErrClosed
	}

	_, err := scheduling.CheckSlot(result.Slots, start, totalDuration)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, scheduling.ErrSlotUnavailable):
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
}
