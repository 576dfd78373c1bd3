package domain

import (
	"time"

	"github.com/salonbook/salon-booking-service/pkg/types"
)

// WorkingHoursPolicy is the singleton daily schedule of the salon:
// the open/close window, an optional break and the weekdays the salon
// is closed. Mutated only by staff; the booking flow reads a snapshot.
type WorkingHoursPolicy struct {
	OpenTime  types.TimeString
	CloseTime types.TimeString

	// Break window, both set or both nil
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString

	// ClosedWeekdays uses time.Weekday numbering: 0=Sunday .. 6=Saturday
	ClosedWeekdays []int

	UpdatedAt time.Time
}

// DefaultWorkingHoursPolicy returns the schedule used until staff save
// their own: open 11:00-21:00 with a 14:00-15:00 break, closed on
// Sundays.
func DefaultWorkingHoursPolicy() *WorkingHoursPolicy {
	breakStart := types.TimeString("14:00")
	breakEnd := types.TimeString("15:00")
	return &WorkingHoursPolicy{
		OpenTime:       "11:00",
		CloseTime:      "21:00",
		BreakStart:     &breakStart,
		BreakEnd:       &breakEnd,
		ClosedWeekdays: []int{0},
	}
}

// HasBreak reports whether a break window is configured.
func (p *WorkingHoursPolicy) HasBreak() bool {
	return p.BreakStart != nil && p.BreakEnd != nil
}

// IsOpenDay reports whether the salon is open on the given date.
// Only the weekday matters; blackout rules are handled separately.
func (p *WorkingHoursPolicy) IsOpenDay(date time.Time) bool {
	weekday := int(date.Weekday())
	for _, closed := range p.ClosedWeekdays {
		if closed == weekday {
			return false
		}
	}
	return true
}

// OpenMinutes returns the opening time as minutes since midnight.
func (p *WorkingHoursPolicy) OpenMinutes() int {
	return p.OpenTime.Minutes()
}

// CloseMinutes returns the closing time as minutes since midnight.
func (p *WorkingHoursPolicy) CloseMinutes() int {
	return p.CloseTime.Minutes()
}

// BreakOverlaps reports whether [startMinute, endMinute) overlaps the
// break window. Always false when no break is configured.
func (p *WorkingHoursPolicy) BreakOverlaps(startMinute, endMinute int) bool {
	if !p.HasBreak() {
		return false
	}
	return OverlapsMinutes(startMinute, endMinute, p.BreakStart.Minutes(), p.BreakEnd.Minutes())
}
