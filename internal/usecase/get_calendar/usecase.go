package get_calendar

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/scheduling"
)

// UseCase use case для построения календаря администратора
type UseCase struct {
	hours           HoursResolver
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	rowHeight       float64
	minEventHeight  float64
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// rowHeight и minEventHeight - высота строки сетки и минимальная высота записи в пикселях.
func NewUseCase(
	hours HoursResolver,
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	rowHeight float64,
	minEventHeight float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		hours:           hours,
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		rowHeight:       rowHeight,
		minEventHeight:  minEventHeight,
		logger:          logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: tenant=%d, anchor=%s, view=%s",
		req.TenantID, req.Anchor.Format(domain.DateFormat), req.View)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	mode, err := scheduling.ParseViewMode(req.View)
	if err != nil {
		uc.logger.Warn("GetCalendar: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Действующие рабочие часы
	cfg := uc.hours.Resolve(ctx, req.TenantID).Config

	// 3. Дни вида
	days, err := scheduling.SelectDays(req.Anchor, mode, cfg.OpenWeekdays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	from, to := days[0], days[len(days)-1]

	// 4. Сетка
	geometry, err := scheduling.NewGridGeometry(cfg, uc.rowHeight, uc.minEventHeight)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to build grid geometry: %v", err)
		return nil, fmt.Errorf("%w: failed to build grid: %v", ErrInternal, err)
	}

	// 5. Записи и блокировки за весь диапазон одним запросом
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		TenantID:   req.TenantID,
		ResourceID: req.ResourceID,
		StartDate:  &from,
		EndDate:    &to,
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.ListForRange(ctx, req.TenantID, req.ResourceID, from, to)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
	}

	// 6. Раскладываем по дням
	apptsByDay := make(map[string][]*domain.Appointment, len(days))
	for _, a := range appointments {
		key := a.Date.Format(domain.DateFormat)
		apptsByDay[key] = append(apptsByDay[key], a)
	}
	blocksByDay := make(map[string][]domain.BlockedInterval, len(days))
	for _, b := range blocks {
		key := b.Date.Format(domain.DateFormat)
		blocksByDay[key] = append(blocksByDay[key], b)
	}

	resp := &Response{
		View:     mode,
		Geometry: geometry,
		Days:     make([]Day, 0, len(days)),
	}
	for _, d := range days {
		key := d.Format(domain.DateFormat)
		resp.Days = append(resp.Days, Day{
			Date:   d,
			Open:   cfg.IsOpenOn(d),
			Events: scheduling.LayoutDay(geometry, apptsByDay[key]),
			Blocks: scheduling.LayoutBlocks(geometry, blocksByDay[key]),
		})
	}

	uc.logger.Info("GetCalendar: %d days, %d appointments, %d blocks for tenant=%d",
		len(resp.Days), len(appointments), len(blocks), req.TenantID)

	return resp, nil
}
