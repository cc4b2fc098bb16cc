package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Cutoff describes "now" for the day being evaluated. When Today is false no
// slot is cut off, whatever NowMinutes says.
type Cutoff struct {
	Today      bool
	NowMinutes int
}

// NewCutoff builds the cutoff for the calendar date of date given the current
// instant. now is converted to loc, the business timezone, so the device clock
// of whoever asks never matters. Only the year/month/day fields of date are used.
func NewCutoff(date, now time.Time, loc *time.Location) Cutoff {
	if loc == nil {
		loc = time.UTC
	}
	nowLocal := now.In(loc)
	y1, m1, d1 := date.Date()
	y2, m2, d2 := nowLocal.Date()

	return Cutoff{
		Today:      y1 == y2 && m1 == m2 && d1 == d2,
		NowMinutes: nowLocal.Hour()*60 + nowLocal.Minute(),
	}
}

// excludes reports whether a slot starting at start is already past.
// A slot starting at the current minute is excluded too.
func (c Cutoff) excludes(start int) bool {
	return c.Today && start <= c.NowMinutes
}

// FilterInput is everything the availability filter needs besides the candidates.
type FilterInput struct {
	ResourceID string
	Lunch      *Window
	Bookings   []domain.BookedInterval
	Blocks     []domain.BlockedInterval
	Cutoff     Cutoff
}

// Window is a plain [Start, Start+Duration) range in minutes of day.
type Window struct {
	Start    int
	Duration int
}

// LunchWindow extracts the lunch break of cfg, nil when there is none.
func LunchWindow(cfg domain.BusinessHoursConfig) *Window {
	start, duration, ok := cfg.LunchInterval()
	if !ok {
		return nil
	}
	return &Window{Start: start, Duration: duration}
}

// FilterAvailability tags every candidate with its availability. No candidate is
// dropped: unavailable slots come back with Available=false, in input order.
//
// A slot is unavailable when it overlaps lunch, a booking of the same resource,
// a block that applies to the resource, or when it is at or before the cutoff.
func FilterAvailability(candidates []int, totalDuration int, in FilterInput) []domain.Slot {
	slots := make([]domain.Slot, len(candidates))

	for i, start := range candidates {
		available := !(overlapsLunch(start, totalDuration, in.Lunch) ||
			overlapsAnyBooking(start, totalDuration, in.ResourceID, in.Bookings) ||
			overlapsAnyBlock(start, totalDuration, in.ResourceID, in.Blocks) ||
			in.Cutoff.excludes(start))

		slots[i] = domain.Slot{
			Start:     domain.TimeOfDayFromMinutes(start),
			Available: available,
		}
	}

	return slots
}

// ComputeSlots runs candidate generation and the availability filter for one
// resource and day. totalDuration must already be aggregated over every
// selected service.
func ComputeSlots(cfg domain.BusinessHoursConfig, totalDuration int, in FilterInput) (domain.SlotList, error) {
	candidates, err := GenerateCandidates(cfg, totalDuration)
	if err != nil {
		return domain.SlotList{}, err
	}
	if in.Lunch == nil {
		in.Lunch = LunchWindow(cfg)
	}

	return domain.SlotList{
		DurationMinutes: totalDuration,
		Slots:           FilterAvailability(candidates, totalDuration, in),
	}, nil
}

// CheckSlot verifies that start is an offered and available slot of list for
// totalDuration minutes.
func CheckSlot(list domain.SlotList, start domain.TimeOfDay, totalDuration int) (domain.Slot, error) {
	slot, err := list.Lookup(start, totalDuration)
	if err != nil {
		return domain.Slot{}, err
	}
	if !slot.Available {
		return slot, fmt.Errorf("%w: %s", ErrSlotUnavailable, start)
	}
	return slot, nil
}

// Occupancy tells what an appointment interval of a resource runs into.
// Lunch and the cutoff are not occupancy: nothing is double-booked there.
type Occupancy struct {
	Booking bool // overlaps an active appointment of the same resource
	Block   bool // overlaps a block that applies to the resource
}

// Any reports whether the interval overlaps a booking or a block.
func (o Occupancy) Any() bool {
	return o.Booking || o.Block
}

// FindOccupancy checks [start, start+duration) of resourceID against bookings and blocks.
func FindOccupancy(start, duration int, resourceID string, bookings []domain.BookedInterval, blocks []domain.BlockedInterval) Occupancy {
	return Occupancy{
		Booking: overlapsAnyBooking(start, duration, resourceID, bookings),
		Block:   overlapsAnyBlock(start, duration, resourceID, blocks),
	}
}

func overlapsLunch(start, duration int, lunch *Window) bool {
	return lunch != nil && Overlaps(start, duration, lunch.Start, lunch.Duration)
}

func overlapsAnyBooking(start, duration int, resourceID string, bookings []domain.BookedInterval) bool {
	for _, b := range bookings {
		if b.ResourceID != resourceID {
			continue
		}
		if Overlaps(start, duration, b.StartMinutes, b.DurationMinutes) {
			return true
		}
	}
	return false
}

func overlapsAnyBlock(start, duration int, resourceID string, blocks []domain.BlockedInterval) bool {
	for _, b := range blocks {
		if !b.AppliesTo(resourceID) {
			continue
		}
		if Overlaps(start, duration, b.StartMinutes(), b.DurationMinutes) {
			return true
		}
	}
	return false
}
