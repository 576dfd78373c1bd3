package get_available_days

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	"github.com/salonbook/salon-booking-service/internal/domain"
	getAvailableDays "github.com/salonbook/salon-booking-service/internal/usecase/get_available_days"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidFromDate  = "некорректная дата начала, ожидается формат YYYY-MM-DD"
	msgServiceNotFound  = "услуга не найдена"
	msgStoreUnavailable = "сервис временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-days
// Query params: serviceId (optional), from (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var serviceID int64

	// serviceId опционален: без него возвращаются просто открытые дни
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr != "" {
		parsed, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /available-days - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceID = parsed
	}

	// from опционален: сдвигает начало выборки внутри окна бронирования
	var from time.Time
	fromStr := r.URL.Query().Get("from")
	if fromStr != "" {
		parsed, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /available-days - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFromDate)
			return
		}
		from = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDays.Request{
		ServiceID: serviceID,
		From:      from,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrServiceNotFound):
			h.logger.Warn("GET /available-days - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /available-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		case errors.Is(err, getAvailableDays.ErrStoreUnavailable):
			h.logger.Error("GET /available-days - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /available-days - Failed to get available days: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
