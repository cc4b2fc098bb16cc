package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(h, m int) *TimeOfDay {
	return &TimeOfDay{Hour: h, Minute: m}
}

func TestBusinessHoursConfig_Validate(t *testing.T) {
	valid := DefaultBusinessHours(1)

	tests := []struct {
		name    string
		mutate  func(c *BusinessHoursConfig)
		wantErr bool
	}{
		{"defaults", func(c *BusinessHoursConfig) {}, false},
		{"with lunch", func(c *BusinessHoursConfig) { c.LunchStart, c.LunchEnd = tod(12, 0), tod(13, 0) }, false},
		{"close before open", func(c *BusinessHoursConfig) { c.OpenHour, c.CloseHour = 18, 9 }, true},
		{"close equals open", func(c *BusinessHoursConfig) { c.CloseHour = c.OpenHour }, true},
		{"open out of range", func(c *BusinessHoursConfig) { c.OpenHour = -1 }, true},
		{"close out of range", func(c *BusinessHoursConfig) { c.CloseHour = 24 }, true},
		{"zero step", func(c *BusinessHoursConfig) { c.StepMinutes = 0 }, true},
		{"only lunch start", func(c *BusinessHoursConfig) { c.LunchStart = tod(12, 0) }, true},
		{"lunch start after end", func(c *BusinessHoursConfig) { c.LunchStart, c.LunchEnd = tod(13, 0), tod(12, 0) }, true},
		{"lunch equal bounds", func(c *BusinessHoursConfig) { c.LunchStart, c.LunchEnd = tod(12, 0), tod(12, 0) }, true},
		{"lunch before open", func(c *BusinessHoursConfig) { c.LunchStart, c.LunchEnd = tod(7, 0), tod(9, 0) }, true},
		{"lunch reaching close", func(c *BusinessHoursConfig) { c.LunchStart, c.LunchEnd = tod(19, 0), tod(20, 0) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBusinessHours)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultBusinessHours(t *testing.T) {
	cfg := DefaultBusinessHours(42)

	assert.Equal(t, int64(42), cfg.TenantID)
	assert.Equal(t, 8, cfg.OpenHour)
	assert.Equal(t, 20, cfg.CloseHour)
	assert.Equal(t, 20, cfg.StepMinutes)
	assert.False(t, cfg.HasLunch())
	assert.False(t, cfg.OpenWeekdays.Has(time.Sunday))
	for d := time.Monday; d <= time.Saturday; d++ {
		assert.True(t, cfg.OpenWeekdays.Has(d), d.String())
	}
}

func TestBusinessHoursConfig_LunchInterval(t *testing.T) {
	cfg := DefaultBusinessHours(1)
	_, _, ok := cfg.LunchInterval()
	assert.False(t, ok)

	cfg.LunchStart, cfg.LunchEnd = tod(12, 0), tod(13, 30)
	start, duration, ok := cfg.LunchInterval()
	require.True(t, ok)
	assert.Equal(t, 720, start)
	assert.Equal(t, 90, duration)
}

func TestWeekdaySet(t *testing.T) {
	s := NewWeekdaySet(time.Monday, time.Friday)

	assert.True(t, s.Has(time.Monday))
	assert.False(t, s.Has(time.Sunday))
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, s.Days())
	assert.Equal(t, []int64{1, 5}, s.Ints())
	assert.True(t, WeekdaySet(0).IsEmpty())

	back, err := WeekdaySetFromInts([]int64{5, 1})
	require.NoError(t, err)
	assert.Equal(t, s, back)

	_, err = WeekdaySetFromInts([]int64{7})
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestWeekdaySet_JSON(t *testing.T) {
	data, err := json.Marshal(NewWeekdaySet(time.Saturday, time.Sunday))
	require.NoError(t, err)
	assert.JSONEq(t, `["sun","sat"]`, string(data))

	var s WeekdaySet
	require.NoError(t, json.Unmarshal([]byte(`["MON","wed"]`), &s))
	assert.Equal(t, NewWeekdaySet(time.Monday, time.Wednesday), s)

	assert.ErrorIs(t, json.Unmarshal([]byte(`["funday"]`), &s), ErrInvalidWeekday)
}
