package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/scheduling"
	hoursModels "github.com/m04kA/SMC-AgendaService/internal/service/hours/models"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

// Query запрос слотов одного мастера на один день
type Query struct {
	TenantID      int64
	ResourceID    string
	Date          time.Time // календарная дата, используются только год/месяц/день
	TotalDuration int       // суммарная длительность выбранных услуг
	// ExcludeAppointmentID запись, которая переносится: ее время не считается занятым
	ExcludeAppointmentID *int64
}

// Result рассчитанные слоты и конфигурация, по которой они построены
type Result struct {
	ResourceID  string
	Hours       domain.BusinessHoursConfig
	HoursSource hoursModels.Source
	Closed      bool // день недели нерабочий, слотов нет
	Slots       domain.SlotList
	// Занятость мастера в этот день (заполняется и для нерабочего дня)
	Bookings []domain.BookedInterval
	Blocks   []domain.BlockedInterval
}

// Occupancy пересечения интервала [start, start+duration) с записями и блокировками мастера.
// В отличие от списка слотов не зависит от сетки шага, обеда и отсечения по времени.
func (r *Result) Occupancy(start domain.TimeOfDay, duration int) scheduling.Occupancy {
	return scheduling.FindOccupancy(start.Minutes(), duration, r.ResourceID, r.Bookings, r.Blocks)
}

// Service собирает входные данные движка слотов (рабочие часы, записи, блокировки, "сейчас")
// и запускает его. Его используют все сценарии: запрос слотов, создание и перенос записи.
type Service struct {
	hours        HoursResolver
	appointments AppointmentRepository
	blocks       BlockRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис доступности. location - часовой пояс бизнеса.
func NewService(
	hours HoursResolver,
	appointments AppointmentRepository,
	blocks BlockRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		hours:        hours,
		appointments: appointments,
		blocks:       blocks,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Location часовой пояс бизнеса
func (s *Service) Location() *time.Location {
	return s.location
}

// Today текущая календарная дата в часовом поясе бизнеса (полночь UTC)
func (s *Service) Today() time.Time {
	y, m, d := s.timeProvider.Now().In(s.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Compute рассчитывает слоты. Закрытый день недели - не ошибка: Result.Closed и пустой список.
func (s *Service) Compute(ctx context.Context, q Query) (*Result, error) {
	if q.TotalDuration <= 0 {
		return nil, fmt.Errorf("%w: total duration must be positive", ErrInvalidInput)
	}
	if q.ResourceID == "" {
		return nil, fmt.Errorf("%w: resource is required", ErrInvalidInput)
	}

	resolution := s.hours.Resolve(ctx, q.TenantID)
	cfg := resolution.Config

	appointments, err := s.appointments.List(ctx, domain.AppointmentsFilter{
		TenantID:   q.TenantID,
		ResourceID: ptr.Ptr(q.ResourceID),
		StartDate:  &q.Date,
		EndDate:    &q.Date,
		ExcludeID:  q.ExcludeAppointmentID,
	})
	if err != nil {
		s.logger.Error("Compute: failed to list appointments tenant=%d resource=%s: %v", q.TenantID, q.ResourceID, err)
		return nil, fmt.Errorf("%w: list appointments: %v", ErrInternal, err)
	}

	blocks, err := s.blocks.ListForRange(ctx, q.TenantID, ptr.Ptr(q.ResourceID), q.Date, q.Date)
	if err != nil {
		s.logger.Error("Compute: failed to list blocks tenant=%d resource=%s: %v", q.TenantID, q.ResourceID, err)
		return nil, fmt.Errorf("%w: list blocks: %v", ErrInternal, err)
	}

	result := &Result{
		ResourceID:  q.ResourceID,
		Hours:       cfg,
		HoursSource: resolution.Source,
		Slots:       domain.SlotList{DurationMinutes: q.TotalDuration, Slots: []domain.Slot{}},
		// Переносимая запись не считается занятостью
		Bookings: domain.BookedIntervals(appointments, q.ExcludeAppointmentID),
		Blocks:   blocks,
	}

	// Нерабочий день: слотов нет, но занятость нужна для принудительной записи администратором
	if !cfg.IsOpenOn(q.Date) {
		s.logger.Info("Compute: tenant=%d is closed on %s", q.TenantID, q.Date.Format(domain.DateFormat))
		result.Closed = true
		return result, nil
	}

	slots, err := scheduling.ComputeSlots(cfg, q.TotalDuration, scheduling.FilterInput{
		ResourceID: q.ResourceID,
		Bookings:   result.Bookings,
		Blocks:     result.Blocks,
		Cutoff:     scheduling.NewCutoff(q.Date, s.timeProvider.Now(), s.location),
	})
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: compute slots: %v", ErrInternal, err)
	}

	result.Slots = slots
	return result, nil
}
