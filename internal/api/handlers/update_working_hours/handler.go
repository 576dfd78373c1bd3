package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	scheduleService "github.com/salonbook/salon-booking-service/internal/service/schedule"
	"github.com/salonbook/salon-booking-service/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidConfiguration = "некорректное расписание"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWorkingHours(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidConfiguration):
			h.logger.Warn("PUT /schedule/working-hours - Invalid configuration: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidConfiguration)

		default:
			h.logger.Error("PUT /schedule/working-hours - Failed to update working hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/working-hours - Working hours updated")
	handlers.RespondJSON(w, http.StatusOK, result)
}
