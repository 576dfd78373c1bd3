package get_available_days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonbook/salon-booking-service/internal/domain"
	scheduleRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/schedule"
	serviceRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/service"
)

// UseCase use case для получения дней, открытых для записи
type UseCase struct {
	services     ServiceRepository
	schedule     ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
	windowDays   int
}

// NewUseCase создает новый экземпляр use case.
// windowDays — горизонт бронирования в днях.
func NewUseCase(
	services ServiceRepository,
	schedule ScheduleRepository,
	logger Logger,
	windowDays int,
) *UseCase {
	if windowDays <= 0 {
		windowDays = domain.DefaultBookingWindowDays
	}
	return &UseCase{
		services:     services,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		windowDays:   windowDays,
	}
}

// Execute возвращает дни скользящего окна, открытые для записи.
// Окно всегда заканчивается через windowDays от сегодняшнего дня;
// необязательная дата From сдвигает начало выборки внутри окна.
// Закрытые дни недели отбрасываются; сегодняшний день отбрасывается,
// если салон на сегодня уже закрылся.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация: если услуга указана, она должна существовать
	if req.ServiceID < 0 {
		return nil, fmt.Errorf("%w: service_id must not be negative", ErrInvalidInput)
	}
	if req.ServiceID > 0 {
		if _, err := uc.services.GetByID(ctx, req.ServiceID); err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableDays: service id=%d not found", req.ServiceID)
				return nil, ErrServiceNotFound
			}
			return nil, uc.storeError("get service", err)
		}
	}

	// 2. Получаем действующее расписание
	policy, err := uc.schedule.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrPolicyNotFound) {
			policy = domain.DefaultWorkingHoursPolicy()
		} else {
			return nil, uc.storeError("get working hours policy", err)
		}
	}

	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	nowMinute := now.Hour()*60 + now.Minute()

	// 3. Начало выборки: From внутри окна, но не раньше сегодняшнего дня
	from := today
	if !req.From.IsZero() {
		requested := time.Date(req.From.Year(), req.From.Month(), req.From.Day(),
			0, 0, 0, 0, today.Location())
		if requested.After(from) {
			from = requested
		}
	}

	// 4. Обходим окно и собираем открытые дни
	days := make([]time.Time, 0, uc.windowDays)
	for offset := 0; offset < uc.windowDays; offset++ {
		day := today.AddDate(0, 0, offset)

		if day.Before(from) {
			continue
		}
		if !policy.IsOpenDay(day) {
			continue
		}

		// Сегодня уже нет смысла показывать, если рабочий день закончился
		if day.Equal(today) && nowMinute >= policy.CloseMinutes() {
			continue
		}

		days = append(days, day)
	}

	uc.logger.Info("GetAvailableDays: window=%d days, available=%d", uc.windowDays, len(days))

	return &Response{Days: days}, nil
}

// storeError переводит ошибку хранилища в ошибку usecase
func (uc *UseCase) storeError(op string, err error) error {
	if errors.Is(err, serviceRepo.ErrExecQuery) || errors.Is(err, scheduleRepo.ErrExecQuery) {
		uc.logger.Error("GetAvailableDays: %s: store unavailable: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	}
	uc.logger.Error("GetAvailableDays: %s: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
