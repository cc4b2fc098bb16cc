package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlockedInterval is an administrator-declared unavailable window.
// A nil ResourceID blocks every resource of the tenant for that time.
type BlockedInterval struct {
	ID              uuid.UUID
	TenantID        int64
	ResourceID      *string
	Date            time.Time
	StartTime       TimeOfDay
	DurationMinutes int
	Reason          string
	CreatedAt       time.Time
}

// StartMinutes returns the start in minutes of day.
func (b BlockedInterval) StartMinutes() int {
	return b.StartTime.Minutes()
}

// IsGlobal returns true if the block applies to all resources
func (b BlockedInterval) IsGlobal() bool {
	return b.ResourceID == nil
}

// AppliesTo reports whether the block disqualifies slots of resourceID.
func (b BlockedInterval) AppliesTo(resourceID string) bool {
	return b.IsGlobal() || *b.ResourceID == resourceID
}
