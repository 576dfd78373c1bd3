package create_blackout

import (
	"time"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/internal/service/schedule/models"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// CreateBlackoutRequest HTTP request model
type CreateBlackoutRequest struct {
	Title           string `json:"title"`
	AnchorDate      string `json:"anchorDate"` // "2026-09-15"
	StartTime       string `json:"startTime"`  // "11:00"
	EndTime         string `json:"endTime"`    // "13:00"
	IsRecurring     bool   `json:"isRecurring"`
	RecurrenceKind  string `json:"recurrenceKind,omitempty"`
	OccurrenceCount int    `json:"occurrenceCount,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlackoutRequest) ToServiceRequest() (*models.CreateBlackoutRequest, error) {
	anchorDate, err := time.Parse(domain.DateFormat, r.AnchorDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlackoutRequest{
		Title:           r.Title,
		AnchorDate:      anchorDate,
		StartTime:       startTime,
		EndTime:         endTime,
		IsRecurring:     r.IsRecurring,
		RecurrenceKind:  r.RecurrenceKind,
		OccurrenceCount: r.OccurrenceCount,
	}, nil
}
