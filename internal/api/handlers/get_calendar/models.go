package get_calendar

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getCalendar "github.com/m04kA/SMC-AgendaService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	View string        `json:"view"`
	Grid GridResponse  `json:"grid"`
	Days []DayResponse `json:"days"`
}

// GridResponse окно и шаг сетки
type GridResponse struct {
	Start     string  `json:"start"` // "08:00"
	End       string  `json:"end"`   // "20:00"
	Step      int     `json:"stepMinutes"`
	Rows      int     `json:"rows"`
	RowHeight float64 `json:"rowHeight"`
}

// DayResponse столбец календаря
type DayResponse struct {
	Date   string          `json:"date"`
	Open   bool            `json:"open"`
	Events []EventResponse `json:"events"`
	Blocks []BlockResponse `json:"blocks"`
}

// EventResponse позиционированная запись
type EventResponse struct {
	AppointmentID   int64   `json:"appointmentId"`
	ResourceID      string  `json:"resourceId"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Top             float64 `json:"top"`
	Height          float64 `json:"height"`
	Conflict        bool    `json:"conflict"`
}

// BlockResponse позиционированная блокировка
type BlockResponse struct {
	ResourceID      *string `json:"resourceId,omitempty"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Reason          string  `json:"reason"`
	Top             float64 `json:"top"`
	Height          float64 `json:"height"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	g := resp.Geometry
	out := &CalendarResponse{
		View: string(resp.View),
		Grid: GridResponse{
			Start:     domain.TimeOfDayFromMinutes(g.WindowStartMinutes).String(),
			End:       domain.TimeOfDayFromMinutes(g.WindowEndMinutes).String(),
			Step:      g.StepMinutes,
			Rows:      g.Rows(),
			RowHeight: g.RowHeight,
		},
		Days: make([]DayResponse, 0, len(resp.Days)),
	}

	for _, d := range resp.Days {
		day := DayResponse{
			Date:   d.Date.Format(domain.DateFormat),
			Open:   d.Open,
			Events: make([]EventResponse, 0, len(d.Events)),
			Blocks: make([]BlockResponse, 0, len(d.Blocks)),
		}
		for _, e := range d.Events {
			day.Events = append(day.Events, EventResponse{
				AppointmentID:   e.AppointmentID,
				ResourceID:      e.ResourceID,
				StartTime:       e.Start.String(),
				DurationMinutes: e.DurationMinutes,
				Status:          string(e.Status),
				Top:             e.Top,
				Height:          e.Height,
				Conflict:        e.Conflict,
			})
		}
		for _, b := range d.Blocks {
			day.Blocks = append(day.Blocks, BlockResponse{
				ResourceID:      b.ResourceID,
				StartTime:       b.Start.String(),
				DurationMinutes: b.DurationMinutes,
				Reason:          b.Reason,
				Top:             b.Top,
				Height:          b.Height,
			})
		}
		out.Days = append(out.Days, day)
	}

	return out
}
