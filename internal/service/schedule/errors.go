package schedule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило блокировки не найдено
	ErrRuleNotFound = errors.New("blackout rule not found")

	// ErrInvalidConfiguration возвращается, когда новое расписание или
	// правило блокировки нарушает бизнес-ограничения
	ErrInvalidConfiguration = errors.New("invalid schedule configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
