package domain

import "github.com/salonbook/salon-booking-service/pkg/types"

// Slot is a candidate appointment start time of fixed service duration.
// Slots are ephemeral: computed on demand, never persisted.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// EndMinutes returns the implied end as minutes since midnight.
func (s *Slot) EndMinutes() int {
	return s.StartTime.Minutes() + s.DurationMinutes
}
