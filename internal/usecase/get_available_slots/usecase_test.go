package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-booking-service/internal/domain"
	appointmentRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/appointment"
	serviceRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/service"
)

// Фейки репозиториев для тестов

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) ListByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeScheduleRepo struct {
	policy *domain.WorkingHoursPolicy
	err    error
}

func (f *fakeScheduleRepo) Get(_ context.Context) (*domain.WorkingHoursPolicy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.policy, nil
}

type fakeBlackoutRepo struct {
	rules []*domain.BlackoutRule
}

func (f *fakeBlackoutRepo) List(_ context.Context) ([]*domain.BlackoutRule, error) {
	return f.rules, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(now time.Time) (*UseCase, *fakeAppointmentRepo, *fakeServiceRepo, *fakeScheduleRepo, *fakeBlackoutRepo) {
	appointments := &fakeAppointmentRepo{}
	services := &fakeServiceRepo{
		services: map[int64]*domain.Service{
			1: {ID: 1, Name: "Corte de pelo", PriceLabel: "Desde 12€", DurationMinutes: 30},
		},
	}
	schedule := &fakeScheduleRepo{policy: domain.DefaultWorkingHoursPolicy()}
	blackouts := &fakeBlackoutRepo{}

	uc := NewUseCase(appointments, services, schedule, blackouts, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}

	return uc, appointments, services, schedule, blackouts
}

func TestExecute_ReturnsSlots(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	uc, _, _, _, _ := newTestUseCase(now)

	// Вторник
	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "Corte de pelo", resp.ServiceName)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Len(t, resp.Slots, 18)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	uc, _, _, _, _ := newTestUseCase(now)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 99,
		Date:      time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	uc, _, _, _, _ := newTestUseCase(now)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: now})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	uc, _, _, _, _ := newTestUseCase(now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	uc, _, _, _, _ := newTestUseCase(now)

	// Воскресенье закрыто по умолчанию
	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayFiltersPassedSlots(t *testing.T) {
	// Понедельник 18:05: остались только слоты с 18:30
	now := time.Date(2026, time.September, 7, 18, 5, 0, 0, time.UTC)
	uc, _, _, _, _ := newTestUseCase(now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "18:30", resp.Slots[0].StartTime.String())
	assert.Equal(t, "20:30", resp.Slots[len(resp.Slots)-1].StartTime.String())
}

func TestExecute_StoreUnavailableAfterRetries(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	uc, appointments, _, _, _ := newTestUseCase(now)

	appointments.err = appointmentRepo.ErrExecQuery

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrStoreUnavailable)
}
