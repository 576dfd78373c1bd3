package domain

import (
	"time"

	"github.com/salonbook/salon-booking-service/pkg/types"
)

// RecurrenceKind is a closed set of blackout recurrence patterns.
// Keeping it a tagged type means the expander's match logic is
// exhaustive and cannot silently no-op on an unknown value: values are
// validated at save time and the switch in BlockedIntervalOn covers
// every member.
type RecurrenceKind string

const (
	RecurrenceNone    RecurrenceKind = "none"
	RecurrenceDaily   RecurrenceKind = "daily"
	RecurrenceWeekly  RecurrenceKind = "weekly"
	RecurrenceMonthly RecurrenceKind = "monthly"
)

// IsValid reports whether the kind is a member of the closed set.
func (k RecurrenceKind) IsValid() bool {
	switch k {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// BlackoutRule removes availability from the timeline: a time-of-day
// window anchored on a date, optionally repeating. Created and deleted
// by staff, never mutated in place.
type BlackoutRule struct {
	ID         int64
	Title      string
	AnchorDate time.Time // first occurrence, time part zero
	StartTime  types.TimeString
	EndTime    types.TimeString

	IsRecurring     bool
	RecurrenceKind  RecurrenceKind
	OccurrenceCount int // occurrences including the anchor; ignored when not recurring

	CreatedAt time.Time
}

// BlockedIntervalOn expands the rule on a candidate date. When the rule
// occurs on that date it returns the blocked window as minutes since
// midnight and ok=true.
//
// The anchor date always matches. A non-recurring rule matches nothing
// else. Recurring rules match forward from the anchor only:
//
//	daily:   every day while elapsedDays < OccurrenceCount
//	weekly:  every 7th day while elapsedDays/7 < OccurrenceCount
//	monthly: the anchor's day-of-month while the whole-month distance
//	         is < OccurrenceCount
//
// A monthly rule anchored on a day-of-month that a shorter month lacks
// (e.g. the 31st) skips that month entirely; it does not clamp to the
// last day.
func (r *BlackoutRule) BlockedIntervalOn(date time.Time) (startMinute, endMinute int, ok bool) {
	if sameDate(date, r.AnchorDate) {
		return r.StartTime.Minutes(), r.EndTime.Minutes(), true
	}
	if !r.IsRecurring {
		return 0, 0, false
	}

	// dates before the anchor never match
	elapsed := daysBetween(r.AnchorDate, date)
	if elapsed <= 0 {
		return 0, 0, false
	}

	switch r.RecurrenceKind {
	case RecurrenceNone:
		return 0, 0, false

	case RecurrenceDaily:
		if elapsed < r.OccurrenceCount {
			return r.StartTime.Minutes(), r.EndTime.Minutes(), true
		}

	case RecurrenceWeekly:
		if elapsed%7 == 0 && elapsed/7 < r.OccurrenceCount {
			return r.StartTime.Minutes(), r.EndTime.Minutes(), true
		}

	case RecurrenceMonthly:
		if date.Day() != r.AnchorDate.Day() {
			return 0, 0, false
		}
		months := monthsBetween(r.AnchorDate, date)
		if months > 0 && months < r.OccurrenceCount {
			return r.StartTime.Minutes(), r.EndTime.Minutes(), true
		}
	}

	return 0, 0, false
}

// sameDate reports whether two instants fall on the same calendar date.
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// daysBetween returns whole calendar days from a to b (negative when b
// precedes a). Both are normalized to UTC midnight first so the result
// is independent of time parts and DST transitions.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// monthsBetween returns the whole-month distance from a to b, ignoring
// the day component.
func monthsBetween(a, b time.Time) int {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return (by-ay)*12 + int(bm) - int(am)
}
