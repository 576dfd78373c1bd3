package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBlockedIntervalOn_NonRecurring(t *testing.T) {
	rule := &BlackoutRule{
		Title:      "Cita médica",
		AnchorDate: date(2026, time.September, 7),
		StartTime:  "11:00",
		EndTime:    "13:00",
	}

	start, end, ok := rule.BlockedIntervalOn(date(2026, time.September, 7))
	require.True(t, ok)
	assert.Equal(t, 660, start)
	assert.Equal(t, 780, end)

	// Любая другая дата не попадает под правило
	_, _, ok = rule.BlockedIntervalOn(date(2026, time.September, 8))
	assert.False(t, ok)
	_, _, ok = rule.BlockedIntervalOn(date(2026, time.September, 6))
	assert.False(t, ok)
}

func TestBlockedIntervalOn_Daily(t *testing.T) {
	rule := &BlackoutRule{
		AnchorDate:      date(2026, time.September, 7),
		StartTime:       "11:00",
		EndTime:         "12:00",
		IsRecurring:     true,
		RecurrenceKind:  RecurrenceDaily,
		OccurrenceCount: 3,
	}

	// Якорь и два следующих дня
	for _, d := range []time.Time{
		date(2026, time.September, 7),
		date(2026, time.September, 8),
		date(2026, time.September, 9),
	} {
		_, _, ok := rule.BlockedIntervalOn(d)
		assert.True(t, ok, "expected %s to be blocked", d.Format(DateFormat))
	}

	// Четвертый день уже не входит
	_, _, ok := rule.BlockedIntervalOn(date(2026, time.September, 10))
	assert.False(t, ok)

	// Даты до якоря не затронуты
	_, _, ok = rule.BlockedIntervalOn(date(2026, time.September, 6))
	assert.False(t, ok)
}

func TestBlockedIntervalOn_Weekly(t *testing.T) {
	rule := &BlackoutRule{
		AnchorDate:      date(2024, time.January, 1),
		StartTime:       "14:00",
		EndTime:         "16:00",
		IsRecurring:     true,
		RecurrenceKind:  RecurrenceWeekly,
		OccurrenceCount: 3,
	}

	blocked := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 8),
		date(2024, time.January, 15),
	}
	for _, d := range blocked {
		_, _, ok := rule.BlockedIntervalOn(d)
		assert.True(t, ok, "expected %s to be blocked", d.Format(DateFormat))
	}

	// Четвертая неделя за пределами количества повторений
	_, _, ok := rule.BlockedIntervalOn(date(2024, time.January, 22))
	assert.False(t, ok)

	// Дни между занятиями свободны
	_, _, ok = rule.BlockedIntervalOn(date(2024, time.January, 9))
	assert.False(t, ok)
}

func TestBlockedIntervalOn_Monthly(t *testing.T) {
	rule := &BlackoutRule{
		AnchorDate:      date(2026, time.September, 15),
		StartTime:       "11:00",
		EndTime:         "21:00",
		IsRecurring:     true,
		RecurrenceKind:  RecurrenceMonthly,
		OccurrenceCount: 3,
	}

	for _, d := range []time.Time{
		date(2026, time.September, 15),
		date(2026, time.October, 15),
		date(2026, time.November, 15),
	} {
		_, _, ok := rule.BlockedIntervalOn(d)
		assert.True(t, ok, "expected %s to be blocked", d.Format(DateFormat))
	}

	_, _, ok := rule.BlockedIntervalOn(date(2026, time.December, 15))
	assert.False(t, ok)

	// Другое число месяца не совпадает
	_, _, ok = rule.BlockedIntervalOn(date(2026, time.October, 14))
	assert.False(t, ok)
}

func TestBlockedIntervalOn_MonthlySkipsShorterMonths(t *testing.T) {
	// Якорь на 31-е число: в месяцах без 31-го повторение пропускается
	rule := &BlackoutRule{
		AnchorDate:      date(2026, time.January, 31),
		StartTime:       "11:00",
		EndTime:         "13:00",
		IsRecurring:     true,
		RecurrenceKind:  RecurrenceMonthly,
		OccurrenceCount: 3,
	}

	_, _, ok := rule.BlockedIntervalOn(date(2026, time.January, 31))
	assert.True(t, ok)

	// В феврале 31-го нет — ни один день не заблокирован
	_, _, ok = rule.BlockedIntervalOn(date(2026, time.February, 28))
	assert.False(t, ok)
	_, _, ok = rule.BlockedIntervalOn(date(2026, time.March, 3))
	assert.False(t, ok)

	// Март: два месяца от якоря, внутри количества повторений
	_, _, ok = rule.BlockedIntervalOn(date(2026, time.March, 31))
	assert.True(t, ok)
}

func TestBlockedIntervalOn_RecurringBeforeAnchor(t *testing.T) {
	rule := &BlackoutRule{
		AnchorDate:      date(2026, time.September, 7),
		StartTime:       "11:00",
		EndTime:         "12:00",
		IsRecurring:     true,
		RecurrenceKind:  RecurrenceDaily,
		OccurrenceCount: 30,
	}

	_, _, ok := rule.BlockedIntervalOn(date(2026, time.September, 1))
	assert.False(t, ok, "recurrence must not extend backwards from the anchor")
}

func TestRecurrenceKind_IsValid(t *testing.T) {
	assert.True(t, RecurrenceNone.IsValid())
	assert.True(t, RecurrenceDaily.IsValid())
	assert.True(t, RecurrenceWeekly.IsValid())
	assert.True(t, RecurrenceMonthly.IsValid())
	assert.False(t, RecurrenceKind("yearly").IsValid())
	assert.False(t, RecurrenceKind("").IsValid())
}
