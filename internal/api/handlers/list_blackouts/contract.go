package list_blackouts

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlackouts(ctx context.Context) (*models.BlackoutListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
