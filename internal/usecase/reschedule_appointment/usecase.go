package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/internal/scheduling"
	"github.com/m04kA/SMC-AgendaService/internal/service/availability"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

// UseCase use case для переноса записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	availability    AvailabilityService
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		availability:    availability,
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи.
// Слоты считаются на сохраненную длительность записи, сама запись не считается занятостью.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: tenant=%d, appointment=%d, date=%s, time=%s, force=%t",
		req.TenantID, req.AppointmentID, req.Date.Format(domain.DateFormat), req.StartTime, req.Force)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	if err := validateDate(req.Date, uc.availability.Today()); err != nil {
		uc.logger.Warn("RescheduleAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем запись
	appt, err := uc.appointmentRepo.GetByID(ctx, req.TenantID, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 4. Переносить можно только pending и confirmed
	if !appt.CanBeRescheduled() {
		uc.logger.Warn("RescheduleAppointment: appointment id=%d has status=%s", appt.ID, appt.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrCannotReschedule, appt.Status)
	}

	resourceID := appt.ResourceID
	if req.ResourceID != nil {
		resourceID = *req.ResourceID
	}

	// 5. Слоты нового дня без учета переносимой записи
	result, err := uc.availability.Compute(ctx, availability.Query{
		TenantID:             req.TenantID,
		ResourceID:           resourceID,
		Date:                 req.Date,
		TotalDuration:        appt.DurationMinutes,
		ExcludeAppointmentID: ptr.Ptr(appt.ID),
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("RescheduleAppointment: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	if err := checkSlot(result, req.StartTime, appt.DurationMinutes); err != nil {
		if !req.Force {
			uc.logger.Warn("RescheduleAppointment: slot %s rejected for appointment id=%d: %v", req.StartTime, appt.ID, err)
			return nil, err
		}
		uc.logger.Warn("RescheduleAppointment: forcing appointment id=%d to %s past slot check: %v", appt.ID, req.StartTime, err)
	}

	// 6. Пересечения с другими записями и блокировками мастера (сама запись исключена)
	occupancy := result.Occupancy(req.StartTime, appt.DurationMinutes)

	// 7. Сохраняем перенос
	appt.ResourceID = resourceID
	appt.Date = req.Date
	appt.StartTime = req.StartTime
	appt.Forced = req.Force && occupancy.Booking

	updated, err := uc.appointmentRepo.Reschedule(ctx, appt)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			uc.logger.Warn("RescheduleAppointment: slot %s taken concurrently for appointment id=%d", req.StartTime, appt.ID)
			return nil, ErrSlotNotAvailable
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to reschedule appointment id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: failed to reschedule appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleAppointment: appointment id=%d moved to %s %s, resource=%s",
		updated.ID, updated.Date.Format(domain.DateFormat), updated.StartTime, updated.ResourceID)

	return &Response{Appointment: updated, Conflict: occupancy.Any()}, nil
}

// checkSlot сверяет выбранное время со списком слотов
func checkSlot(result *availability.Result, start domain.TimeOfDay, duration int) error {
	if result.Closed {
		return ErrClosed
	}

	_, err := scheduling.CheckSlot(result.Slots, start, duration)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, scheduling.ErrSlotUnavailable):
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
}
