package get_available_slots

import (
	"time"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// generateSlots генерирует список доступных слотов на день.
// Кандидаты идут от времени открытия с фиксированным шагом
// domain.SlotStepMinutes; кандидат отбрасывается, если интервал
// [start, start+duration) пересекается с перерывом, существующей
// записью или блокировкой, действующей на эту дату.
//
// Все интервалы полуоткрытые: запись, заканчивающаяся в 12:00,
// не конфликтует со слотом, начинающимся в 12:00.
//
// Результат пересчитывается заново при каждом вызове и может быть
// пустым — отсутствие свободных слотов не является ошибкой.
func generateSlots(
	policy *domain.WorkingHoursPolicy,
	durationMinutes int,
	date time.Time,
	appointments []*domain.Appointment,
	rules []*domain.BlackoutRule,
) []domain.Slot {
	openMin := policy.OpenMinutes()
	closeMin := policy.CloseMinutes()

	// Разворачиваем правила блокировки в интервалы, действующие на дату
	blocked := blockedIntervals(rules, date)

	slots := make([]domain.Slot, 0)

	for start := openMin; start+durationMinutes <= closeMin; start += domain.SlotStepMinutes {
		end := start + durationMinutes

		if policy.BreakOverlaps(start, end) {
			continue
		}
		if overlapsAppointments(start, end, appointments) {
			continue
		}
		if overlapsBlocked(start, end, blocked) {
			continue
		}

		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			// начало слота всегда внутри дня, сюда попасть нельзя
			continue
		}

		slots = append(slots, domain.Slot{
			StartTime:       startTime,
			DurationMinutes: durationMinutes,
		})
	}

	return slots
}

// blockedInterval интервал в минутах от полуночи
type blockedInterval struct {
	start int
	end   int
}

// blockedIntervals возвращает интервалы всех правил, действующих на дату.
// Правила независимы: блокируется объединение всех совпавших интервалов.
func blockedIntervals(rules []*domain.BlackoutRule, date time.Time) []blockedInterval {
	intervals := make([]blockedInterval, 0, len(rules))
	for _, rule := range rules {
		if start, end, ok := rule.BlockedIntervalOn(date); ok {
			intervals = append(intervals, blockedInterval{start: start, end: end})
		}
	}
	return intervals
}

func overlapsAppointments(start, end int, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if appt.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func overlapsBlocked(start, end int, blocked []blockedInterval) bool {
	for _, b := range blocked {
		if domain.OverlapsMinutes(start, end, b.start, b.end) {
			return true
		}
	}
	return false
}

// filterPastSlots отбрасывает слоты, начинающиеся раньше now.
// Используется только когда запрошенная дата — сегодня.
func filterPastSlots(slots []domain.Slot, now time.Time) []domain.Slot {
	nowMin := now.Hour()*60 + now.Minute()

	filtered := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.StartTime.Minutes() >= nowMin {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
