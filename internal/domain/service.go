package domain

import "time"

// Service represents a bookable salon service.
// Owned by staff configuration; the booking flow only reads it.
type Service struct {
	ID              int64
	Name            string
	Description     string
	PriceLabel      string // display price, e.g. "Desde 12€"
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidDuration reports whether the duration is inside business bounds.
func (s *Service) HasValidDuration() bool {
	return s.DurationMinutes >= MinServiceDurationMinutes &&
		s.DurationMinutes <= MaxServiceDurationMinutes
}
