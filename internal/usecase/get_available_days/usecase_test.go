package get_available_days

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-booking-service/internal/domain"
	serviceRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/service"
)

// Фейки репозиториев для тестов

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
}

func (f *fakeScheduleRepo) Get(_ context.Context) (*domain.WorkingHoursPolicy, error) {
	return f.policy, nil
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

func newTestUseCase(now time.Time) *UseCase {
	services := &fakeServiceRepo{
		services: map[int64]*domain.Service{
			1: {ID: 1, Name: "Corte de pelo", DurationMinutes: 30},
		},
	}
	schedule := &fakeScheduleRepo{policy: domain.DefaultWorkingHoursPolicy()}

	uc := NewUseCase(services, schedule, nopLogger{}, domain.DefaultBookingWindowDays)
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_WindowExcludesClosedDays(t *testing.T) {
	// Понедельник 7 сентября, утро: окно 7-20 сентября содержит
	// два воскресенья (13 и 20), оба закрыты по умолчанию
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	require.Len(t, resp.Days, 12)

	assert.Equal(t, "2026-09-07", resp.Days[0].Format(domain.DateFormat))
	for _, day := range resp.Days {
		assert.NotEqual(t, time.Sunday, day.Weekday(), "closed weekday must not appear: %s", day)
	}

	// Дни строго возрастают и не выходят за горизонт
	last := resp.Days[len(resp.Days)-1]
	assert.Equal(t, "2026-09-19", last.Format(domain.DateFormat))
	for i := 1; i < len(resp.Days); i++ {
		assert.True(t, resp.Days[i].After(resp.Days[i-1]))
	}
}

func TestExecute_TodayDroppedAfterClose(t *testing.T) {
	// 21:00 — салон уже закрыт, сегодняшний день не показываем
	now := time.Date(2026, time.September, 7, 21, 0, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Days)

	assert.Equal(t, "2026-09-08", resp.Days[0].Format(domain.DateFormat))
	assert.Len(t, resp.Days, 11)
}

func TestExecute_ServiceFilter(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	// Существующая услуга не меняет набор дней
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 12)

	// Неизвестная услуга — ошибка
	_, err = uc.Execute(context.Background(), &Request{ServiceID: 99})
	require.ErrorIs(t, err, ErrServiceNotFound)

	// Отрицательный идентификатор — ошибка валидации
	_, err = uc.Execute(context.Background(), &Request{ServiceID: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_FromShiftsSelectionStart(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	// From внутри окна: дни до него отбрасываются, конец окна не сдвигается
	resp, err := uc.Execute(context.Background(), &Request{
		From: time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Days)
	assert.Equal(t, "2026-09-14", resp.Days[0].Format(domain.DateFormat))
	assert.Equal(t, "2026-09-19", resp.Days[len(resp.Days)-1].Format(domain.DateFormat))

	// From в прошлом приравнивается к сегодняшнему дню
	resp, err = uc.Execute(context.Background(), &Request{
		From: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-07", resp.Days[0].Format(domain.DateFormat))

	// From за пределами окна — пустой список
	resp, err = uc.Execute(context.Background(), &Request{
		From: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_AllDaysOpenPolicy(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(now)

	policy := domain.DefaultWorkingHoursPolicy()
	policy.ClosedWeekdays = []int{}
	uc.schedule = &fakeScheduleRepo{policy: policy}

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Len(t, resp.Days, domain.DefaultBookingWindowDays)
}
