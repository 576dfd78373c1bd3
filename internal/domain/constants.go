package domain

// Slot grid and booking window defaults
const (
	// SlotStepMinutes фиксированный шаг сетки слотов
	SlotStepMinutes = 30

	// DefaultBookingWindowDays сколько календарных дней вперед
	// предлагается клиенту для записи
	DefaultBookingWindowDays = 14
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MinOccurrenceCount        = 1
	MaxOccurrenceCount        = 365
	MaxTitleLength            = 200
	MaxClientNameLength       = 200
	MaxClientPhoneLength      = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
