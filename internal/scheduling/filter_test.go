package scheduling

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

const resource = "ana"

func at(h, m int) int {
	return h*60 + m
}

func slotAt(t *testing.T, list domain.SlotList, h, m int) domain.Slot {
	t.Helper()
	slot, err := list.Lookup(domain.TimeOfDay{Hour: h, Minute: m}, list.DurationMinutes)
	require.NoError(t, err)
	return slot
}

func TestComputeSlots_LunchCarveOut(t *testing.T) {
	cfg := hours(8, 20, 15)
	cfg.LunchStart = &domain.TimeOfDay{Hour: 12}
	cfg.LunchEnd = &domain.TimeOfDay{Hour: 13}

	list, err := ComputeSlots(cfg, 30, FilterInput{ResourceID: resource})
	require.NoError(t, err)

	assert.False(t, slotAt(t, list, 11, 45).Available, "11:45-12:15 overlaps lunch")
	assert.True(t, slotAt(t, list, 11, 0).Available)
	assert.True(t, slotAt(t, list, 11, 30).Available, "ends exactly when lunch starts")
	assert.False(t, slotAt(t, list, 12, 30).Available)
	assert.True(t, slotAt(t, list, 13, 0).Available, "starts exactly when lunch ends")
}

func TestComputeSlots_BookingConflict(t *testing.T) {
	in := FilterInput{
		ResourceID: resource,
		Bookings: []domain.BookedInterval{
			{StartMinutes: at(9, 0), DurationMinutes: 30, ResourceID: resource},
		},
	}

	list, err := ComputeSlots(hours(8, 20, 15), 30, in)
	require.NoError(t, err)

	assert.False(t, slotAt(t, list, 9, 0).Available)
	assert.True(t, slotAt(t, list, 9, 30).Available)
	assert.False(t, slotAt(t, list, 8, 45).Available, "08:45-09:15 overlaps")
	assert.True(t, slotAt(t, list, 8, 30).Available, "ends exactly at 09:00")
}

func TestComputeSlots_OtherResourceBookingIgnored(t *testing.T) {
	in := FilterInput{
		ResourceID: resource,
		Bookings: []domain.BookedInterval{
			{StartMinutes: at(9, 0), DurationMinutes: 30, ResourceID: "bruno"},
		},
	}

	list, err := ComputeSlots(hours(8, 20, 15), 30, in)
	require.NoError(t, err)
	assert.True(t, slotAt(t, list, 9, 0).Available)
}

func TestComputeSlots_MultiServiceNeedsContiguousWindow(t *testing.T) {
	// 09:00-10:00 with a booking 09:20-09:35 leaves a 20 and a 25 minute gap
	cfg := hours(9, 10, 5)
	in := FilterInput{
		ResourceID: resource,
		Bookings: []domain.BookedInterval{
			{StartMinutes: at(9, 20), DurationMinutes: 15, ResourceID: resource},
		},
	}

	totals, err := Aggregate([]domain.ServiceItem{
		{ID: 1, DurationMinutes: 20},
		{ID: 2, DurationMinutes: 25},
	})
	require.NoError(t, err)
	require.Equal(t, 45, totals.TotalDuration)

	combined, err := ComputeSlots(cfg, totals.TotalDuration, in)
	require.NoError(t, err)
	require.NotEmpty(t, combined.Slots)
	assert.True(t, combined.IsFullyBooked())

	single, err := ComputeSlots(cfg, 20, in)
	require.NoError(t, err)
	assert.True(t, slotAt(t, single, 9, 0).Available)
	assert.True(t, slotAt(t, single, 9, 35).Available)

	// the 20-minute list must not be reused for the 45-minute selection
	_, err = single.Lookup(domain.TimeOfDay{Hour: 9}, totals.TotalDuration)
	assert.ErrorIs(t, err, domain.ErrStaleSlotList)
}

func TestComputeSlots_TodayCutoff(t *testing.T) {
	in := FilterInput{
		ResourceID: resource,
		Cutoff:     Cutoff{Today: true, NowMinutes: at(10, 0)},
	}

	list, err := ComputeSlots(hours(8, 20, 20), 20, in)
	require.NoError(t, err)

	assert.False(t, slotAt(t, list, 9, 40).Available)
	assert.False(t, slotAt(t, list, 10, 0).Available, "starting at the current minute is excluded")
	assert.True(t, slotAt(t, list, 10, 20).Available)

	in.Cutoff.Today = false
	other, err := ComputeSlots(hours(8, 20, 20), 20, in)
	require.NoError(t, err)
	assert.Len(t, other.Available(), len(other.Slots), "another day is never cut off")
}

func TestComputeSlots_ResourceScopedBlocks(t *testing.T) {
	bruno := "bruno"
	blocks := []domain.BlockedInterval{
		{ResourceID: &bruno, StartTime: domain.TimeOfDay{Hour: 9}, DurationMinutes: 60},
		{ResourceID: nil, StartTime: domain.TimeOfDay{Hour: 15}, DurationMinutes: 60},
	}
	cfg := hours(8, 20, 20)

	forAna, err := ComputeSlots(cfg, 20, FilterInput{ResourceID: resource, Blocks: blocks})
	require.NoError(t, err)
	forBruno, err := ComputeSlots(cfg, 20, FilterInput{ResourceID: bruno, Blocks: blocks})
	require.NoError(t, err)

	assert.True(t, slotAt(t, forAna, 9, 20).Available)
	assert.False(t, slotAt(t, forBruno, 9, 20).Available)

	assert.False(t, slotAt(t, forAna, 15, 20).Available)
	assert.False(t, slotAt(t, forBruno, 15, 20).Available)
}

func TestComputeSlots_NoSlotOmitted(t *testing.T) {
	in := FilterInput{
		ResourceID: resource,
		Blocks:     []domain.BlockedInterval{{StartTime: domain.TimeOfDay{Hour: 8}, DurationMinutes: 12 * 60}},
	}

	list, err := ComputeSlots(hours(8, 20, 20), 20, in)
	require.NoError(t, err)

	assert.Len(t, list.Slots, 36)
	assert.True(t, list.IsFullyBooked())
	for i := 1; i < len(list.Slots); i++ {
		assert.True(t, list.Slots[i-1].Start.Before(list.Slots[i].Start))
	}
}

func TestComputeSlots_Idempotent(t *testing.T) {
	cfg := hours(8, 20, 20)
	cfg.LunchStart = &domain.TimeOfDay{Hour: 12}
	cfg.LunchEnd = &domain.TimeOfDay{Hour: 13}
	in := FilterInput{
		ResourceID: resource,
		Bookings:   []domain.BookedInterval{{StartMinutes: at(10, 0), DurationMinutes: 40, ResourceID: resource}},
		Blocks:     []domain.BlockedInterval{{StartTime: domain.TimeOfDay{Hour: 17}, DurationMinutes: 30}},
		Cutoff:     Cutoff{Today: true, NowMinutes: at(9, 5)},
	}

	first, err := ComputeSlots(cfg, 40, in)
	require.NoError(t, err)
	second, err := ComputeSlots(cfg, 40, in)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNewCutoff_UsesBusinessTimezone(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*3600)
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC) // 23:00 on the 9th in BRT

	cutoff := NewCutoff(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), now, saoPaulo)
	assert.True(t, cutoff.Today)
	assert.Equal(t, at(23, 0), cutoff.NowMinutes)

	cutoff = NewCutoff(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), now, saoPaulo)
	assert.False(t, cutoff.Today)
}

func TestCheckSlot(t *testing.T) {
	in := FilterInput{
		ResourceID: resource,
		Bookings:   []domain.BookedInterval{{StartMinutes: at(9, 0), DurationMinutes: 20, ResourceID: resource}},
	}
	list, err := ComputeSlots(hours(8, 20, 20), 20, in)
	require.NoError(t, err)

	_, err = CheckSlot(list, domain.TimeOfDay{Hour: 9, Minute: 20}, 20)
	assert.NoError(t, err)

	_, err = CheckSlot(list, domain.TimeOfDay{Hour: 9}, 20)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	_, err = CheckSlot(list, domain.TimeOfDay{Hour: 9, Minute: 5}, 20)
	assert.ErrorIs(t, err, domain.ErrSlotNotOffered)

	_, err = CheckSlot(list, domain.TimeOfDay{Hour: 9, Minute: 20}, 40)
	assert.ErrorIs(t, err, domain.ErrStaleSlotList)
}

func TestFindOccupancy(t *testing.T) {
	other := "bia"
	bookings := []domain.BookedInterval{
		{StartMinutes: at(9, 0), DurationMinutes: 30, ResourceID: resource},
		{StartMinutes: at(11, 0), DurationMinutes: 60, ResourceID: other},
	}
	blocks := []domain.BlockedInterval{
		{StartTime: domain.TimeOfDay{Hour: 12}, DurationMinutes: 60},
		{ResourceID: &other, StartTime: domain.TimeOfDay{Hour: 14}, DurationMinutes: 60},
	}

	tests := []struct {
		name     string
		start    int
		duration int
		want     Occupancy
	}{
		{"free", at(10, 0), 30, Occupancy{}},
		{"off grid but free", at(9, 35), 20, Occupancy{}},
		{"touches booking end", at(9, 30), 30, Occupancy{}},
		{"overlaps booking", at(9, 20), 20, Occupancy{Booking: true}},
		{"booking of another resource", at(11, 0), 30, Occupancy{}},
		{"global block", at(11, 50), 20, Occupancy{Block: true}},
		{"block of another resource", at(14, 0), 30, Occupancy{}},
		{"booking and block", at(8, 50), at(12, 10) - at(8, 50), Occupancy{Booking: true, Block: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindOccupancy(tt.start, tt.duration, resource, bookings, blocks)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Booking || tt.want.Block, got.Any())
		})
	}
}
