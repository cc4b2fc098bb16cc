package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// WeekdaySet is a bitmask of open weekdays, bit i for time.Weekday(i).
type WeekdaySet uint8

var weekdayNames = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// ParseWeekday accepts the short lowercase names used in the API ("sun".."sat").
func ParseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range weekdayNames {
		if n == name {
			return time.Weekday(i), nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
}

func WeekdayName(d time.Weekday) string {
	return weekdayNames[int(d)%7]
}

func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d%7)
}

func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d%7)) != 0
}

func (s WeekdaySet) IsEmpty() bool {
	return s&0x7f == 0
}

// Days returns the open weekdays ordered Sunday first.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// Ints returns weekdays as integers (0 = Sunday), the storage representation.
func (s WeekdaySet) Ints() []int64 {
	days := s.Days()
	out := make([]int64, len(days))
	for i, d := range days {
		out[i] = int64(d)
	}
	return out
}

// WeekdaySetFromInts is the inverse of Ints.
func WeekdaySetFromInts(values []int64) (WeekdaySet, error) {
	var s WeekdaySet
	for _, v := range values {
		if v < 0 || v > 6 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, v)
		}
		s = s.With(time.Weekday(v))
	}
	return s, nil
}

func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, WeekdayName(d))
	}
	return json.Marshal(names)
}

func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWeekday, err)
	}
	var set WeekdaySet
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return err
		}
		set = set.With(d)
	}
	*s = set
	return nil
}

// BusinessHoursConfig is a tenant's operating window for every open day.
type BusinessHoursConfig struct {
	TenantID     int64
	OpenHour     int
	CloseHour    int
	StepMinutes  int
	OpenWeekdays WeekdaySet
	LunchStart   *TimeOfDay
	LunchEnd     *TimeOfDay
	UpdatedAt    time.Time
}

// DefaultBusinessHours returns the configuration used when a tenant has none.
func DefaultBusinessHours(tenantID int64) BusinessHoursConfig {
	return BusinessHoursConfig{
		TenantID:     tenantID,
		OpenHour:     DefaultOpenHour,
		CloseHour:    DefaultCloseHour,
		StepMinutes:  DefaultStepMinutes,
		OpenWeekdays: DefaultOpenWeekdays,
	}
}

// Validate checks the configuration invariants. Every violation wraps ErrInvalidBusinessHours.
func (c BusinessHoursConfig) Validate() error {
	if c.OpenHour < 0 || c.OpenHour > 23 {
		return fmt.Errorf("%w: openHour %d out of range 0-23", ErrInvalidBusinessHours, c.OpenHour)
	}
	if c.CloseHour < 0 || c.CloseHour > 23 {
		return fmt.Errorf("%w: closeHour %d out of range 0-23", ErrInvalidBusinessHours, c.CloseHour)
	}
	if c.CloseHour <= c.OpenHour {
		return fmt.Errorf("%w: closeHour %d must be after openHour %d", ErrInvalidBusinessHours, c.CloseHour, c.OpenHour)
	}
	if c.StepMinutes <= 0 {
		return fmt.Errorf("%w: stepMinutes must be positive", ErrInvalidBusinessHours)
	}

	if (c.LunchStart == nil) != (c.LunchEnd == nil) {
		return fmt.Errorf("%w: lunchStart and lunchEnd must be set together", ErrInvalidBusinessHours)
	}
	if c.LunchStart != nil {
		start, end := c.LunchStart.Minutes(), c.LunchEnd.Minutes()
		if start >= end {
			return fmt.Errorf("%w: lunchStart %s must be before lunchEnd %s",
				ErrInvalidBusinessHours, c.LunchStart, c.LunchEnd)
		}
		if start < c.OpenMinutes() || end >= c.CloseMinutes() {
			return fmt.Errorf("%w: lunch %s-%s must fall within %02d:00-%02d:00",
				ErrInvalidBusinessHours, c.LunchStart, c.LunchEnd, c.OpenHour, c.CloseHour)
		}
	}

	return nil
}

// OpenMinutes returns the opening time in minutes of day.
func (c BusinessHoursConfig) OpenMinutes() int {
	return c.OpenHour * 60
}

// CloseMinutes returns the closing time in minutes of day.
func (c BusinessHoursConfig) CloseMinutes() int {
	return c.CloseHour * 60
}

func (c BusinessHoursConfig) HasLunch() bool {
	return c.LunchStart != nil && c.LunchEnd != nil
}

// LunchInterval returns the lunch break as start and duration in minutes.
func (c BusinessHoursConfig) LunchInterval() (start, duration int, ok bool) {
	if !c.HasLunch() {
		return 0, 0, false
	}
	start = c.LunchStart.Minutes()
	return start, c.LunchEnd.Minutes() - start, true
}

// IsOpenOn reports whether the weekday of date is an open day.
func (c BusinessHoursConfig) IsOpenOn(date time.Time) bool {
	return c.OpenWeekdays.Has(date.Weekday())
}
