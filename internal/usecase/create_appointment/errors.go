package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidDate возвращается при некорректной дате записи (дата в прошлом)
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата выходит за горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrClosedDay возвращается, когда салон закрыт в указанную дату
	ErrClosedDay = errors.New("create_appointment: salon is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время слота некорректно
	// (не кратно шагу сетки или выходит за рабочие часы)
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrTooLateToBook возвращается при попытке записаться на уже прошедшее время
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSlotBlocked возвращается, когда слот попадает в интервал блокировки
	ErrSlotBlocked = errors.New("create_appointment: slot is blocked")

	// ErrSlotNotAvailable возвращается, когда слот уже занят другой записью
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно
	ErrStoreUnavailable = errors.New("create_appointment: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
