package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/salonbook/salon-booking-service/internal/domain"
	appointmentRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/appointment"
	blackoutRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/blackout"
	scheduleRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/schedule"
	serviceRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/service"
)

// UseCase use case для создания записи
type UseCase struct {
	appointments AppointmentRepository
	services     ServiceRepository
	schedule     ScheduleRepository
	blackouts    BlackoutRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
	windowDays   int
}

// NewUseCase создает новый экземпляр use case.
// windowDays — горизонт бронирования в днях; 0 отключает ограничение.
func NewUseCase(
	appointments AppointmentRepository,
	services ServiceRepository,
	schedule ScheduleRepository,
	blackouts BlackoutRepository,
	txManager TransactionManager,
	logger Logger,
	windowDays int,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		services:     services,
		schedule:     schedule,
		blackouts:    blackouts,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		windowDays:   windowDays,
	}
}

// Execute выполняет use case создания записи.
// Проверка занятости и вставка выполняются в одной сериализуемой
// транзакции с блокировкой записей на дату (FOR UPDATE): из двух
// конкурирующих запросов на один слот ровно один завершится успехом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%d, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу — длительность определяет конец слота
	service, err := uc.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		return nil, uc.storeError("get service", err)
	}

	// 4. Валидация даты: не в прошлом и внутри горизонта бронирования
	if err := validateDate(req.Date, now, uc.windowDays); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем действующее расписание
	policy, err := uc.schedule.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrPolicyNotFound) {
			policy = domain.DefaultWorkingHoursPolicy()
		} else {
			return nil, uc.storeError("get working hours policy", err)
		}
	}

	// 6. Проверяем, что салон открыт в этот день недели
	if !policy.IsOpenDay(req.Date) {
		uc.logger.Warn("CreateAppointment: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrClosedDay
	}

	// 7. Вычисляем границы слота
	startMinute := req.StartTime.Minutes()
	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: slot does not fit into the day: %v", err)
		return nil, fmt.Errorf("%w: slot does not fit into the day", ErrInvalidTimeSlot)
	}
	endMinute := startMinute + service.DurationMinutes

	// 8. Валидация времени: сетка, рабочие часы, перерыв
	if err := validateSlotTime(policy, startMinute, endMinute); err != nil {
		uc.logger.Warn("CreateAppointment: slot time validation failed: %v", err)
		return nil, err
	}

	// 9. Для сегодняшней даты время начала не должно быть в прошлом
	if err := validateStartNotPassed(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: start time already passed")
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 10. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 10.1. Проверяем правила блокировки
		rules, err := uc.blackouts.List(txCtx)
		if err != nil {
			return uc.storeError("list blackout rules", err)
		}

		for _, rule := range rules {
			if bStart, bEnd, ok := rule.BlockedIntervalOn(req.Date); ok {
				if domain.OverlapsMinutes(startMinute, endMinute, bStart, bEnd) {
					uc.logger.Warn("CreateAppointment: slot blocked by rule id=%d (%s)", rule.ID, rule.Title)
					return ErrSlotBlocked
				}
			}
		}

		// 10.2. Получаем записи на дату с блокировкой строк (FOR UPDATE)
		appointments, err := uc.appointments.ListByDate(txCtx, req.Date)
		if err != nil {
			return uc.storeError("list appointments", err)
		}

		// 10.3. Проверяем пересечения с существующими записями
		for _, appt := range appointments {
			if appt.Overlaps(startMinute, endMinute) {
				uc.logger.Warn("CreateAppointment: slot %s conflicts with appointment id=%d",
					req.StartTime, appt.ID)
				return ErrSlotNotAvailable
			}
		}

		// 10.4. Создаем запись с денормализацией названия услуги
		appt := &domain.Appointment{
			ServiceID:   service.ID,
			ServiceName: service.Name,
			ClientName:  strings.TrimSpace(req.ClientName),
			ClientPhone: strings.TrimSpace(req.ClientPhone),
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     endTime,
		}

		created, err := uc.appointments.Create(txCtx, appt)
		if err != nil {
			return uc.storeError("create appointment", err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Ошибки usecase из транзакции возвращаем как есть
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: service.DurationMinutes,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// storeError переводит ошибку хранилища в ошибку usecase.
// Записи никогда не повторяются автоматически: повтор мог бы
// продублировать запись при неоднозначном исходе вставки.
func (uc *UseCase) storeError(op string, err error) error {
	if isStoreUnavailable(err) {
		uc.logger.Error("CreateAppointment: %s: store unavailable: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	}
	uc.logger.Error("CreateAppointment: %s: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

func isStoreUnavailable(err error) bool {
	return errors.Is(err, appointmentRepo.ErrExecQuery) ||
		errors.Is(err, serviceRepo.ErrExecQuery) ||
		errors.Is(err, scheduleRepo.ErrExecQuery) ||
		errors.Is(err, blackoutRepo.ErrExecQuery)
}
