package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ViewMode is the calendar view the day range is selected for.
type ViewMode string

const (
	ViewDay      ViewMode = "day"
	ViewThreeDay ViewMode = "3-day"
	ViewWeek     ViewMode = "week"
)

// ParseViewMode validates a view mode coming from the API. Empty means day.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "", ViewDay:
		return ViewDay, nil
	case ViewThreeDay:
		return ViewThreeDay, nil
	case ViewWeek:
		return ViewWeek, nil
	default:
		return "", fmt.Errorf("%w: unknown view mode %q", ErrInvalidInput, s)
	}
}

// SelectDays returns the ordered calendar days a view shows for anchor.
//
//   - day: the anchor alone, even if it is a closed day.
//   - 3-day: the day before, the anchor and the day after, unfiltered.
//   - week: Sunday through Saturday of the anchor's week, keeping only open
//     weekdays; when that leaves nothing, all seven days are returned.
//
// Returned dates are midnight in the anchor's location.
func SelectDays(anchor time.Time, mode ViewMode, open domain.WeekdaySet) ([]time.Time, error) {
	day := startOfDay(anchor)

	switch mode {
	case ViewDay:
		return []time.Time{day}, nil

	case ViewThreeDay:
		return []time.Time{day.AddDate(0, 0, -1), day, day.AddDate(0, 0, 1)}, nil

	case ViewWeek:
		sunday := day.AddDate(0, 0, -int(day.Weekday()))
		all := make([]time.Time, 7)
		for i := range all {
			all[i] = sunday.AddDate(0, 0, i)
		}

		filtered := make([]time.Time, 0, 7)
		for _, d := range all {
			if open.Has(d.Weekday()) {
				filtered = append(filtered, d)
			}
		}
		if len(filtered) == 0 {
			return all, nil
		}
		return filtered, nil

	default:
		return nil, fmt.Errorf("%w: unknown view mode %q", ErrInvalidInput, mode)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
