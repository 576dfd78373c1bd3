package get_available_slots

import (
	"time"

	"github.com/salonbook/salon-booking-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time     // Дата, на которую запрашивались слоты
	ServiceID       int64         // ID услуги
	ServiceName     string        // Название услуги
	DurationMinutes int           // Длительность услуги
	Slots           []domain.Slot // Список доступных слотов, по возрастанию времени
}
