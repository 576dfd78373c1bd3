package domain

import (
	"time"

	"github.com/salonbook/salon-booking-service/pkg/types"
)

// Appointment represents a persisted booking: a half-open time interval
// [StartTime, EndTime) on a calendar date. EndTime is computed from the
// service duration at commit time and the record is never mutated in
// place; a reschedule is modeled as delete + recreate.
type Appointment struct {
	ID        int64
	ServiceID int64

	// Denormalized service data for history: the service may be edited
	// or deleted later without rewriting past appointments
	ServiceName string

	ClientName  string
	ClientPhone string

	Date      time.Time // calendar day, time part zero
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedAt time.Time
}

// StartMinutes returns the start as minutes since midnight.
func (a *Appointment) StartMinutes() int {
	return a.StartTime.Minutes()
}

// EndMinutes returns the end as minutes since midnight.
func (a *Appointment) EndMinutes() int {
	return a.EndTime.Minutes()
}

// Overlaps reports whether the appointment overlaps the half-open
// interval [startMinute, endMinute) on its own date.
func (a *Appointment) Overlaps(startMinute, endMinute int) bool {
	return OverlapsMinutes(a.StartMinutes(), a.EndMinutes(), startMinute, endMinute)
}
