package create_appointment

import (
	"time"

	"github.com/salonbook/salon-booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID   int64            // ID услуги
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Время начала слота (например, "11:30")
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ServiceID       int64            // ID услуги
	ServiceName     string           // Название услуги (денормализовано)
	ClientName      string           // Имя клиента
	ClientPhone     string           // Телефон клиента
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	DurationMinutes int              // Длительность в минутах
	CreatedAt       time.Time        // Время создания
}
