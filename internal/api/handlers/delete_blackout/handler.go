package delete_blackout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	scheduleService "github.com/salonbook/salon-booking-service/internal/service/schedule"
)

const (
	msgInvalidRuleID = "некорректный ID правила блокировки"
	msgRuleNotFound  = "правило блокировки не найдено"
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

// Handle DELETE /api/v1/schedule/blackouts/{blackoutId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ruleID, err := strconv.ParseInt(vars["blackoutId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedule/blackouts/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.DeleteBlackout(r.Context(), ruleID); err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrRuleNotFound):
			h.logger.Warn("DELETE /schedule/blackouts/{id} - Rule not found: rule_id=%d", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		default:
			h.logger.Error("DELETE /schedule/blackouts/{id} - Failed to delete rule: rule_id=%d, error=%v",
				ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/blackouts/{id} - Blackout rule deleted: rule_id=%d", ruleID)
	handlers.RespondNoContent(w)
}
