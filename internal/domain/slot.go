package domain

import "fmt"

// Slot is a candidate start time tagged available or not.
type Slot struct {
	Start     TimeOfDay
	Available bool
}

// SlotList is the computed slot view for one day, resource and total duration.
// It is never persisted.
type SlotList struct {
	DurationMinutes int
	Slots           []Slot
}

// Lookup finds the slot starting at start. durationMinutes is the duration the
// caller is booking now; a list computed for another duration is stale and
// must be regenerated, so Lookup refuses it.
func (l SlotList) Lookup(start TimeOfDay, durationMinutes int) (Slot, error) {
	if durationMinutes != l.DurationMinutes {
		return Slot{}, fmt.Errorf("%w: computed for %d minutes, requested %d",
			ErrStaleSlotList, l.DurationMinutes, durationMinutes)
	}
	for _, s := range l.Slots {
		if s.Start == start {
			return s, nil
		}
	}
	return Slot{}, fmt.Errorf("%w: %s", ErrSlotNotOffered, start)
}

// Available returns only the offerable slots.
func (l SlotList) Available() []Slot {
	out := make([]Slot, 0, len(l.Slots))
	for _, s := range l.Slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

// IsFullyBooked returns true if no slot is offerable
func (l SlotList) IsFullyBooked() bool {
	for _, s := range l.Slots {
		if s.Available {
			return false
		}
	}
	return true
}
