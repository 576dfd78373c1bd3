package get_available_days

import "time"

// Request модель запроса на получение доступных дней
type Request struct {
	ServiceID int64     // ID услуги (0 — без проверки услуги)
	From      time.Time // Начало выборки внутри окна (zero — с сегодняшнего дня)
}

// Response модель ответа со списком доступных дней
type Response struct {
	Days []time.Time // Дни, открытые для записи, по возрастанию
}
