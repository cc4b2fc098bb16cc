package appointments

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	repo         AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает запись тенанта по ID
func (s *Service) GetByID(ctx context.Context, tenantID, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d tenant=%d", id, tenantID)

	appt, err := s.get(ctx, "GetByID", tenantID, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи тенанта с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for tenant=%d", req.TenantID)

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	appointments, err := s.repo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for tenant=%d", len(appointments), req.TenantID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись. Отмененная запись освобождает время мастера.
func (s *Service) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d tenant=%d", req.AppointmentID, req.TenantID)

	if req.CancellationReason != nil && utf8.RuneCountInString(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellationReason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appt, err := s.get(ctx, "Cancel", req.TenantID, req.AppointmentID)
	if err != nil {
		return err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appt.ID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.repo.Cancel(ctx, req.TenantID, req.AppointmentID, req.CancellationReason, s.timeProvider.Now()); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", req.AppointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", req.AppointmentID)
	return nil
}

// UpdateStatus меняет статус записи. Отмена выполняется через Cancel, чтобы сохранить причину.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d tenant=%d to status=%s", req.AppointmentID, req.TenantID, req.Status)

	next, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil || next == domain.StatusCancelled || next == domain.StatusPending {
		s.logger.Warn("UpdateStatus: unsupported status=%q", req.Status)
		return nil, fmt.Errorf("%w: status must be one of confirmed, completed, no_show", ErrInvalidInput)
	}

	appt, err := s.get(ctx, "UpdateStatus", req.TenantID, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	if !appt.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: appointment id=%d cannot move from %s to %s", appt.ID, appt.Status, next)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, req.TenantID, req.AppointmentID, next); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	appt.Status = next
	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appt.ID, next)
	return models.FromDomainAppointment(appt), nil
}

func (s *Service) get(ctx context.Context, op string, tenantID, id int64) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}
