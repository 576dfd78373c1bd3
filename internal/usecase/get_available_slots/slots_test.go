package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

func testDate() time.Time {
	// Понедельник
	return time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
}

func slotStarts(slots []domain.Slot) []string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartTime.String())
	}
	return starts
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	policy := domain.DefaultWorkingHoursPolicy() // 11:00-21:00, перерыв 14:00-15:00

	slots := generateSlots(policy, 30, testDate(), nil, nil)

	// Сетка с шагом 30 минут от 11:00 до 20:30 минус два слота,
	// пересекающих перерыв (14:00 и 14:30)
	require.Len(t, slots, 18)
	assert.Equal(t, "11:00", slots[0].StartTime.String())
	assert.Equal(t, "20:30", slots[len(slots)-1].StartTime.String())
	assert.NotContains(t, slotStarts(slots), "14:00")
	assert.NotContains(t, slotStarts(slots), "14:30")
	// Слот, заканчивающийся ровно в начале перерыва, доступен
	assert.Contains(t, slotStarts(slots), "13:30")
}

func TestGenerateSlots_NoBreakFullGrid(t *testing.T) {
	policy := domain.DefaultWorkingHoursPolicy()
	policy.BreakStart = nil
	policy.BreakEnd = nil

	slots := generateSlots(policy, 30, testDate(), nil, nil)

	// Без перерыва сетка занимает весь рабочий день
	require.Len(t, slots, 20)
	assert.Equal(t, "11:00", slots[0].StartTime.String())
	assert.Equal(t, "20:30", slots[len(slots)-1].StartTime.String())
}

func TestGenerateSlots_LongServiceAroundBreak(t *testing.T) {
	policy := domain.DefaultWorkingHoursPolicy()

	// Услуга 60 минут: слот 13:30 заканчивался бы в 14:30 внутри перерыва
	slots := generateSlots(policy, 60, testDate(), nil, nil)
	starts := slotStarts(slots)

	assert.NotContains(t, starts, "13:30")
	assert.NotContains(t, starts, "14:00")
	assert.NotContains(t, starts, "14:30")
	assert.Contains(t, starts, "13:00") // заканчивается ровно в начале перерыва
	assert.Contains(t, starts, "15:00") // начинается сразу после перерыва
}

func TestGenerateSlots_AscendingOrder(t *testing.T) {
	policy := domain.DefaultWorkingHoursPolicy()

	slots := generateSlots(policy, 30, testDate(), nil, nil)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].StartTime.IsBefore(slots[i].StartTime),
			"slots must be in ascending order")
	}
}

func TestGenerateSlots_AppointmentRemovesOverlapping(t *testing.T) {
	policy := domain.DefaultWorkingHoursPolicy()

	appointments := []*domain.Appointment{
		{
			Date:      testDate(),
			StartTime: types.TimeString("12:00"),
			EndTime:   types.TimeString("13:00"),
		},
	}

	slots := generateSlots(policy, 30, testDate(), appointments, nil)
	starts := slotStarts(slots)

	assert.NotContains(t, starts, "12:00")
	assert.NotContains(t, starts, "12:30")
	// Полуоткрытые интервалы: границы записи не задевают соседние слоты
	assert.Contains(t, starts, "11:30")
	assert.Contains(t, starts, "13:00")
}

func TestGenerateSlots_LongServiceSpansNeighbors(t *testing.T) {
	policy := domain.DefaultWorkingHoursPolicy()

	appointments := []*domain.Appointment{
		{
			Date:      testDate(),
			StartTime: types.TimeString("12:00"),
			EndTime:   types.TimeString("12:30"),
		},
	}

	// Услуга 60 минут: слот 11:30 заканчивался бы в 12:30 и конфликтует
	slots := generateSlots(policy, 60, testDate(), appointments, nil)
	starts := slotStarts(slots)

	assert.NotContains(t, starts, "11:30")
	assert.NotContains(t, starts, "12:00")
	assert.Contains(t, starts, "11:00") // заканчивается ровно в 12:00
	assert.Contains(t, starts, "12:30")

	// Последний слот должен помещаться до закрытия
	assert.Equal(t, "20:00", starts[len(starts)-1])
}

func TestGenerateSlots_BlackoutRemovesWindow(t *testing.T) {
	policy := domain.DefaultWorkingHoursPolicy()

	rules := []*domain.BlackoutRule{
		{
			Title:      "Inventario",
			AnchorDate: testDate(),
			StartTime:  types.TimeString("16:00"),
			EndTime:    types.TimeString("18:00"),
		},
	}

	slots := generateSlots(policy, 30, testDate(), nil, rules)
	starts := slotStarts(slots)

	for _, blocked := range []string{"16:00", "16:30", "17:00", "17:30"} {
		assert.NotContains(t, starts, blocked)
	}
	assert.Contains(t, starts, "15:30") // заканчивается ровно в 16:00
	assert.Contains(t, starts, "18:00")
}

func TestGenerateSlots_BlackoutOnOtherDateIgnored(t *testing.T) {
	policy := domain.DefaultWorkingHoursPolicy()

	rules := []*domain.BlackoutRule{
		{
			AnchorDate: testDate().AddDate(0, 0, 1),
			StartTime:  types.TimeString("11:00"),
			EndTime:    types.TimeString("21:00"),
		},
	}

	slots := generateSlots(policy, 30, testDate(), nil, rules)
	require.Len(t, slots, 18)
}

func TestGenerateSlots_DailyBlackoutSingleOccurrence(t *testing.T) {
	policy := domain.DefaultWorkingHoursPolicy()

	rules := []*domain.BlackoutRule{
		{
			AnchorDate:      testDate(),
			StartTime:       types.TimeString("13:00"),
			EndTime:         types.TimeString("13:30"),
			IsRecurring:     true,
			RecurrenceKind:  domain.RecurrenceDaily,
			OccurrenceCount: 1,
		},
	}

	// В день якоря слот заблокирован
	starts := slotStarts(generateSlots(policy, 30, testDate(), nil, rules))
	assert.NotContains(t, starts, "13:00")

	// Одно повторение: на следующий день слот снова доступен
	nextDay := testDate().AddDate(0, 0, 1)
	starts = slotStarts(generateSlots(policy, 30, nextDay, nil, rules))
	assert.Contains(t, starts, "13:00")
}

func TestGenerateSlots_FullyBookedDay(t *testing.T) {
	policy := &domain.WorkingHoursPolicy{
		OpenTime:  "11:00",
		CloseTime: "13:00",
	}

	appointments := []*domain.Appointment{
		{StartTime: types.TimeString("11:00"), EndTime: types.TimeString("13:00")},
	}

	slots := generateSlots(policy, 30, testDate(), appointments, nil)
	assert.Empty(t, slots)
	assert.NotNil(t, slots, "no availability must still be an empty slice")
}

func TestGenerateSlots_DurationLongerThanDay(t *testing.T) {
	policy := &domain.WorkingHoursPolicy{
		OpenTime:  "11:00",
		CloseTime: "12:00",
	}

	slots := generateSlots(policy, 120, testDate(), nil, nil)
	assert.Empty(t, slots)
}

func TestFilterPastSlots(t *testing.T) {
	slots := []domain.Slot{
		{StartTime: types.TimeString("11:00"), DurationMinutes: 30},
		{StartTime: types.TimeString("12:00"), DurationMinutes: 30},
		{StartTime: types.TimeString("13:00"), DurationMinutes: 30},
	}

	now := time.Date(2026, time.September, 7, 12, 0, 0, 0, time.UTC)
	filtered := filterPastSlots(slots, now)

	// Слот, начинающийся ровно сейчас, остается
	require.Len(t, filtered, 2)
	assert.Equal(t, "12:00", filtered[0].StartTime.String())
	assert.Equal(t, "13:00", filtered[1].StartTime.String())
}
