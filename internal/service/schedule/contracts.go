package schedule

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.WorkingHoursPolicy, error)
	Upsert(ctx context.Context, policy *domain.WorkingHoursPolicy) (*domain.WorkingHoursPolicy, error)
}

// BlackoutRepository интерфейс репозитория правил блокировки
type BlackoutRepository interface {
	Create(ctx context.Context, rule *domain.BlackoutRule) (*domain.BlackoutRule, error)
	List(ctx context.Context) ([]*domain.BlackoutRule, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
