package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-booking-service/internal/domain"
	blackoutRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/blackout"
	scheduleRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/schedule"
	"github.com/salonbook/salon-booking-service/internal/service/schedule/models"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// Фейки репозиториев для тестов

type fakeScheduleRepo struct {
	policy *domain.WorkingHoursPolicy
}

func (f *fakeScheduleRepo) Get(_ context.Context) (*domain.WorkingHoursPolicy, error) {
	if f.policy == nil {
		return nil, scheduleRepo.ErrPolicyNotFound
	}
	return f.policy, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, policy *domain.WorkingHoursPolicy) (*domain.WorkingHoursPolicy, error) {
	stored := *policy
	stored.UpdatedAt = time.Now()
	f.policy = &stored
	return &stored, nil
}

type fakeBlackoutRepo struct {
	nextID int64
	rules  []*domain.BlackoutRule
}

func (f *fakeBlackoutRepo) Create(_ context.Context, rule *domain.BlackoutRule) (*domain.BlackoutRule, error) {
	f.nextID++
	stored := *rule
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.rules = append(f.rules, &stored)
	return &stored, nil
}

func (f *fakeBlackoutRepo) List(_ context.Context) ([]*domain.BlackoutRule, error) {
	return f.rules, nil
}

func (f *fakeBlackoutRepo) Delete(_ context.Context, id int64) error {
	for i, rule := range f.rules {
		if rule.ID == id {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return blackoutRepo.ErrRuleNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeScheduleRepo, *fakeBlackoutRepo) {
	schedule := &fakeScheduleRepo{}
	blackouts := &fakeBlackoutRepo{}
	return NewService(schedule, blackouts, nopLogger{}), schedule, blackouts
}

func validWorkingHours() *models.UpdateWorkingHoursRequest {
	breakStart := types.TimeString("13:00")
	breakEnd := types.TimeString("14:00")
	return &models.UpdateWorkingHoursRequest{
		OpenTime:       "10:00",
		CloseTime:      "20:00",
		BreakStart:     &breakStart,
		BreakEnd:       &breakEnd,
		ClosedWeekdays: []int{0, 1},
	}
}

func TestGetWorkingHours_DefaultWhenUnset(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.GetWorkingHours(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "11:00", resp.OpenTime.String())
	assert.Equal(t, "21:00", resp.CloseTime.String())
	require.NotNil(t, resp.BreakStart)
	assert.Equal(t, "14:00", resp.BreakStart.String())
	assert.Equal(t, []int{0}, resp.ClosedWeekdays)
}

func TestUpdateWorkingHours_Success(t *testing.T) {
	svc, schedule, _ := newTestService()

	resp, err := svc.UpdateWorkingHours(context.Background(), validWorkingHours())
	require.NoError(t, err)

	assert.Equal(t, "10:00", resp.OpenTime.String())
	assert.Equal(t, []int{0, 1}, resp.ClosedWeekdays)
	require.NotNil(t, schedule.policy)

	// Последующее чтение возвращает сохраненное расписание
	got, err := svc.GetWorkingHours(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "20:00", got.CloseTime.String())
}

func TestUpdateWorkingHours_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.UpdateWorkingHoursRequest)
	}{
		{
			name:   "open after close",
			mutate: func(req *models.UpdateWorkingHoursRequest) { req.OpenTime = "20:00"; req.CloseTime = "10:00" },
		},
		{
			name:   "open equals close",
			mutate: func(req *models.UpdateWorkingHoursRequest) { req.CloseTime = req.OpenTime },
		},
		{
			name:   "malformed open time",
			mutate: func(req *models.UpdateWorkingHoursRequest) { req.OpenTime = "25:00" },
		},
		{
			name:   "break start without end",
			mutate: func(req *models.UpdateWorkingHoursRequest) { req.BreakEnd = nil },
		},
		{
			name: "break reversed",
			mutate: func(req *models.UpdateWorkingHoursRequest) {
				start := types.TimeString("15:00")
				end := types.TimeString("14:00")
				req.BreakStart = &start
				req.BreakEnd = &end
			},
		},
		{
			name: "break outside working hours",
			mutate: func(req *models.UpdateWorkingHoursRequest) {
				start := types.TimeString("09:00")
				end := types.TimeString("10:30")
				req.BreakStart = &start
				req.BreakEnd = &end
			},
		},
		{
			name:   "weekday out of range",
			mutate: func(req *models.UpdateWorkingHoursRequest) { req.ClosedWeekdays = []int{7} },
		},
		{
			name:   "duplicate weekday",
			mutate: func(req *models.UpdateWorkingHoursRequest) { req.ClosedWeekdays = []int{1, 1} },
		},
		{
			name: "all weekdays closed",
			mutate: func(req *models.UpdateWorkingHoursRequest) {
				req.ClosedWeekdays = []int{0, 1, 2, 3, 4, 5, 6}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, schedule, _ := newTestService()

			req := validWorkingHours()
			tt.mutate(req)

			_, err := svc.UpdateWorkingHours(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, schedule.policy, "invalid schedule must not be saved")
		})
	}
}

func validBlackout() *models.CreateBlackoutRequest {
	return &models.CreateBlackoutRequest{
		Title:      "Inventario",
		AnchorDate: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  "11:00",
		EndTime:    "13:00",
	}
}

func TestCreateBlackout_Success(t *testing.T) {
	svc, _, blackouts := newTestService()

	resp, err := svc.CreateBlackout(context.Background(), validBlackout())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-09-10", resp.AnchorDate)
	assert.Equal(t, string(domain.RecurrenceNone), resp.RecurrenceKind)
	require.Len(t, blackouts.rules, 1)
}

func TestCreateBlackout_RecurringNormalized(t *testing.T) {
	svc, _, blackouts := newTestService()

	req := validBlackout()
	req.IsRecurring = true
	req.RecurrenceKind = string(domain.RecurrenceWeekly)
	req.OccurrenceCount = 4

	resp, err := svc.CreateBlackout(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.IsRecurring)
	assert.Equal(t, "weekly", resp.RecurrenceKind)
	assert.Equal(t, 4, resp.OccurrenceCount)
	require.Len(t, blackouts.rules, 1)
	assert.Equal(t, domain.RecurrenceWeekly, blackouts.rules[0].RecurrenceKind)
}

func TestCreateBlackout_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.CreateBlackoutRequest)
	}{
		{
			name:   "empty title",
			mutate: func(req *models.CreateBlackoutRequest) { req.Title = "   " },
		},
		{
			name:   "zero anchor date",
			mutate: func(req *models.CreateBlackoutRequest) { req.AnchorDate = time.Time{} },
		},
		{
			name:   "reversed interval",
			mutate: func(req *models.CreateBlackoutRequest) { req.StartTime = "13:00"; req.EndTime = "11:00" },
		},
		{
			name:   "malformed start time",
			mutate: func(req *models.CreateBlackoutRequest) { req.StartTime = "11:60" },
		},
		{
			name: "recurring without kind",
			mutate: func(req *models.CreateBlackoutRequest) {
				req.IsRecurring = true
				req.OccurrenceCount = 3
			},
		},
		{
			name: "recurring with unknown kind",
			mutate: func(req *models.CreateBlackoutRequest) {
				req.IsRecurring = true
				req.RecurrenceKind = "yearly"
				req.OccurrenceCount = 3
			},
		},
		{
			name: "occurrence count too small",
			mutate: func(req *models.CreateBlackoutRequest) {
				req.IsRecurring = true
				req.RecurrenceKind = string(domain.RecurrenceDaily)
				req.OccurrenceCount = 0
			},
		},
		{
			name: "occurrence count too large",
			mutate: func(req *models.CreateBlackoutRequest) {
				req.IsRecurring = true
				req.RecurrenceKind = string(domain.RecurrenceDaily)
				req.OccurrenceCount = domain.MaxOccurrenceCount + 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, blackouts := newTestService()

			req := validBlackout()
			tt.mutate(req)

			_, err := svc.CreateBlackout(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Empty(t, blackouts.rules)
		})
	}
}

func TestDeleteBlackout(t *testing.T) {
	svc, _, blackouts := newTestService()

	created, err := svc.CreateBlackout(context.Background(), validBlackout())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBlackout(context.Background(), created.ID))
	assert.Empty(t, blackouts.rules)

	err = svc.DeleteBlackout(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrRuleNotFound)
}
