// Package scheduling computes offerable appointment slots and calendar layouts.
// Everything here is pure: callers pass in configuration, bookings, blocks and
// the current business-local time, and get the same answer for the same input.
package scheduling

// Overlaps reports whether [startA, startA+durationA) and [startB, startB+durationB)
// share at least one minute. Intervals that only touch do not overlap.
//
// Every availability and conflict check goes through this function.
func Overlaps(startA, durationA, startB, durationB int) bool {
	return startA < startB+durationB && startB < startA+durationA
}
