package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonbook/salon-booking-service/internal/domain"
	appointmentRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/appointment"
	blackoutRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/blackout"
	scheduleRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/schedule"
	serviceRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/service"
)

const (
	readRetryAttempts = 3
	readRetryBackoff  = 20 * time.Millisecond
)

// UseCase получение доступных слотов на дату
type UseCase struct {
	appointments AppointmentRepository
	services     ServiceRepository
	schedule     ScheduleRepository
	blackouts    BlackoutRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointments AppointmentRepository,
	services ServiceRepository,
	schedule ScheduleRepository,
	blackouts BlackoutRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		services:     services,
		schedule:     schedule,
		blackouts:    blackouts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает доступные слоты для услуги на указанную дату.
// Слоты вычисляются заново при каждом вызове: запрос только читает
// данные и ничего не резервирует. Пустой список слотов — нормальный
// результат, а не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid request: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем услугу — длительность определяет размер слота
	svc, err := uc.getService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	response := &Response{
		Date:            req.Date,
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		DurationMinutes: svc.DurationMinutes,
		Slots:           make([]domain.Slot, 0),
	}

	// 3. Даты в прошлом всегда дают пустой список
	if isDateInPast(req.Date, now) {
		return response, nil
	}

	// 4. Получаем действующее расписание
	policy, err := uc.getPolicy(ctx)
	if err != nil {
		return nil, err
	}

	// 5. Закрытый день — пустой список без генерации
	if !policy.IsOpenDay(req.Date) {
		return response, nil
	}

	// 6. Загружаем занятость: записи на дату и правила блокировки
	var appointments []*domain.Appointment
	err = uc.withReadRetry(ctx, "appointments.ListByDate", func() error {
		var listErr error
		appointments, listErr = uc.appointments.ListByDate(ctx, req.Date)
		return listErr
	})
	if err != nil {
		return nil, uc.classifyStoreError("list appointments", err)
	}

	var rules []*domain.BlackoutRule
	err = uc.withReadRetry(ctx, "blackouts.List", func() error {
		var listErr error
		rules, listErr = uc.blackouts.List(ctx)
		return listErr
	})
	if err != nil {
		return nil, uc.classifyStoreError("list blackout rules", err)
	}

	// 7. Генерируем слоты
	slots := generateSlots(policy, svc.DurationMinutes, req.Date, appointments, rules)

	// 8. Для сегодняшнего дня отбрасываем уже прошедшие слоты
	if isSameDay(req.Date, now) {
		slots = filterPastSlots(slots, now)
	}

	response.Slots = slots

	uc.logger.Info("GetAvailableSlots: service=%d date=%s slots=%d",
		svc.ID, req.Date.Format(domain.DateFormat), len(slots))

	return response, nil
}

// getService получает услугу с повторными попытками чтения
func (uc *UseCase) getService(ctx context.Context, id int64) (*domain.Service, error) {
	var svc *domain.Service
	err := uc.withReadRetry(ctx, "services.GetByID", func() error {
		var getErr error
		svc, getErr = uc.services.GetByID(ctx, id)
		return getErr
	})
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrServiceNotFound, id)
		}
		return nil, uc.classifyStoreError("get service", err)
	}
	return svc, nil
}

// getPolicy получает расписание; отсутствие настроенного расписания
// не ошибка — применяются значения по умолчанию
func (uc *UseCase) getPolicy(ctx context.Context) (*domain.WorkingHoursPolicy, error) {
	var policy *domain.WorkingHoursPolicy
	err := uc.withReadRetry(ctx, "schedule.Get", func() error {
		var getErr error
		policy, getErr = uc.schedule.Get(ctx)
		return getErr
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrPolicyNotFound) {
			return domain.DefaultWorkingHoursPolicy(), nil
		}
		return nil, uc.classifyStoreError("get working hours policy", err)
	}
	return policy, nil
}

// withReadRetry выполняет операцию чтения с повторными попытками.
// Повторяются только транзиентные ошибки хранилища (ErrExecQuery);
// бизнес-ошибки и ошибки построения запроса возвращаются сразу.
func (uc *UseCase) withReadRetry(ctx context.Context, op string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= readRetryAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr) {
			return lastErr
		}
		uc.logger.Warn("GetAvailableSlots: %s attempt %d/%d failed: %v",
			op, attempt, readRetryAttempts, lastErr)

		if attempt < readRetryAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(readRetryBackoff * time.Duration(attempt)):
			}
		}
	}
	return lastErr
}

// isTransient определяет, стоит ли повторять операцию чтения
func isTransient(err error) bool {
	return errors.Is(err, appointmentRepo.ErrExecQuery) ||
		errors.Is(err, serviceRepo.ErrExecQuery) ||
		errors.Is(err, scheduleRepo.ErrExecQuery) ||
		errors.Is(err, blackoutRepo.ErrExecQuery)
}

// classifyStoreError переводит ошибку хранилища в ошибку usecase
func (uc *UseCase) classifyStoreError(op string, err error) error {
	if isTransient(err) {
		uc.logger.Error("GetAvailableSlots: %s: store unavailable: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	}
	uc.logger.Error("GetAvailableSlots: %s: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
