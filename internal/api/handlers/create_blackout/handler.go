package create_blackout

import (
	"errors"
	"net/http"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	scheduleService "github.com/salonbook/salon-booking-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени"
	msgInvalidConfiguration = "некорректное правило блокировки"
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

// Handle POST /api/v1/schedule/blackouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/blackouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /schedule/blackouts - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.CreateBlackout(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidConfiguration):
			h.logger.Warn("POST /schedule/blackouts - Invalid configuration: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidConfiguration)

		default:
			h.logger.Error("POST /schedule/blackouts - Failed to create blackout rule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/blackouts - Blackout rule created: rule_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
