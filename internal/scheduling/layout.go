package scheduling

import (
	"fmt"
	"math"
	"sort"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// GridGeometry positions events on a time-proportional calendar grid where
// each row covers StepMinutes.
type GridGeometry struct {
	WindowStartMinutes int
	WindowEndMinutes   int
	StepMinutes        int
	RowHeight          float64
	MinEventHeight     float64
}

// NewGridGeometry derives the grid window from business hours.
func NewGridGeometry(cfg domain.BusinessHoursConfig, rowHeight, minEventHeight float64) (GridGeometry, error) {
	if err := cfg.Validate(); err != nil {
		return GridGeometry{}, err
	}
	if rowHeight <= 0 || minEventHeight < 0 {
		return GridGeometry{}, fmt.Errorf("%w: row height must be positive and min event height non-negative", ErrInvalidInput)
	}

	return GridGeometry{
		WindowStartMinutes: cfg.OpenMinutes(),
		WindowEndMinutes:   cfg.CloseMinutes(),
		StepMinutes:        cfg.StepMinutes,
		RowHeight:          rowHeight,
		MinEventHeight:     minEventHeight,
	}, nil
}

// Rows returns the number of grid rows between window start and end.
func (g GridGeometry) Rows() int {
	return int(math.Ceil(float64(g.WindowEndMinutes-g.WindowStartMinutes) / float64(g.StepMinutes)))
}

// Offset is the vertical position of an event starting at startMinutes.
// Events before the window get a negative offset; the grid clips them.
func (g GridGeometry) Offset(startMinutes int) float64 {
	return float64(startMinutes-g.WindowStartMinutes) / float64(g.StepMinutes) * g.RowHeight
}

// Height is proportional to duration but never below MinEventHeight, so very
// short services stay readable.
func (g GridGeometry) Height(durationMinutes int) float64 {
	return math.Max(float64(durationMinutes)/float64(g.StepMinutes)*g.RowHeight, g.MinEventHeight)
}

// EventBox is a positioned appointment.
type EventBox struct {
	AppointmentID   int64
	ResourceID      string
	Start           domain.TimeOfDay
	DurationMinutes int
	Status          domain.AppointmentStatus
	Top             float64
	Height          float64
	Conflict        bool // overlaps another appointment of the same resource
}

// BlockBox is a positioned blocked interval.
type BlockBox struct {
	ResourceID      *string
	Start           domain.TimeOfDay
	DurationMinutes int
	Reason          string
	Top             float64
	Height          float64
}

// LayoutDay positions one day's active appointments and flags conflicts.
// Conflicts are only highlighted here: an administrator may double-book on purpose.
func LayoutDay(g GridGeometry, appointments []*domain.Appointment) []EventBox {
	active := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a != nil && a.IsActive() {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		si, sj := active[i].StartTime.Minutes(), active[j].StartTime.Minutes()
		if si != sj {
			return si < sj
		}
		return active[i].ID < active[j].ID
	})

	boxes := make([]EventBox, len(active))
	for i, a := range active {
		boxes[i] = EventBox{
			AppointmentID:   a.ID,
			ResourceID:      a.ResourceID,
			Start:           a.StartTime,
			DurationMinutes: a.DurationMinutes,
			Status:          a.Status,
			Top:             g.Offset(a.StartTime.Minutes()),
			Height:          g.Height(a.DurationMinutes),
		}
	}

	for i := range active {
		for j := i + 1; j < len(active); j++ {
			a, b := active[i].Interval(), active[j].Interval()
			if a.ResourceID != b.ResourceID {
				continue
			}
			if Overlaps(a.StartMinutes, a.DurationMinutes, b.StartMinutes, b.DurationMinutes) {
				boxes[i].Conflict = true
				boxes[j].Conflict = true
			}
		}
	}

	return boxes
}

// LayoutBlocks positions one day's blocked intervals in chronological order.
func LayoutBlocks(g GridGeometry, blocks []domain.BlockedInterval) []BlockBox {
	sorted := append([]domain.BlockedInterval(nil), blocks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMinutes() < sorted[j].StartMinutes()
	})

	boxes := make([]BlockBox, len(sorted))
	for i, b := range sorted {
		boxes[i] = BlockBox{
			ResourceID:      b.ResourceID,
			Start:           b.StartTime,
			DurationMinutes: b.DurationMinutes,
			Reason:          b.Reason,
			Top:             g.Offset(b.StartMinutes()),
			Height:          g.Height(b.DurationMinutes),
		}
	}
	return boxes
}
