package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWorkingHoursPolicy(t *testing.T) {
	policy := DefaultWorkingHoursPolicy()

	assert.Equal(t, 11*60, policy.OpenMinutes())
	assert.Equal(t, 21*60, policy.CloseMinutes())
	require.True(t, policy.HasBreak())
	assert.Equal(t, []int{0}, policy.ClosedWeekdays)
}

func TestWorkingHoursPolicy_IsOpenDay(t *testing.T) {
	policy := DefaultWorkingHoursPolicy()

	// 2026-09-06 воскресенье, 2026-09-07 понедельник
	sunday := time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	assert.False(t, policy.IsOpenDay(sunday))
	assert.True(t, policy.IsOpenDay(monday))
}

func TestWorkingHoursPolicy_BreakOverlaps(t *testing.T) {
	policy := DefaultWorkingHoursPolicy() // перерыв 14:00-15:00

	// Слот целиком внутри перерыва
	assert.True(t, policy.BreakOverlaps(14*60, 14*60+30))

	// Слот пересекает начало перерыва
	assert.True(t, policy.BreakOverlaps(13*60+30, 14*60+30))

	// Слот заканчивается ровно в начале перерыва — не конфликт
	assert.False(t, policy.BreakOverlaps(13*60, 14*60))

	// Слот начинается ровно в конце перерыва — не конфликт
	assert.False(t, policy.BreakOverlaps(15*60, 16*60))
}

func TestWorkingHoursPolicy_NoBreak(t *testing.T) {
	policy := &WorkingHoursPolicy{
		OpenTime:  "09:00",
		CloseTime: "18:00",
	}

	assert.False(t, policy.HasBreak())
	assert.False(t, policy.BreakOverlaps(12*60, 13*60))
}
