package models

import (
	"time"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей.
// Date фильтрует по конкретной дате; если она нулевая, возвращаются
// все записи начиная с From (по умолчанию — с сегодняшнего дня).
type ListAppointmentsRequest struct {
	Date time.Time `json:"date,omitempty"`
	From time.Time `json:"from,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID          int64            `json:"id"`
	ServiceID   int64            `json:"serviceId"`
	ServiceName string           `json:"serviceName"`
	ClientName  string           `json:"clientName"`
	ClientPhone string           `json:"clientPhone"`
	Date        string           `json:"date"` // YYYY-MM-DD
	StartTime   types.TimeString `json:"startTime"`
	EndTime     types.TimeString `json:"endTime"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:          a.ID,
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		Date:        a.Date.Format(domain.DateFormat),
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		CreatedAt:   a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}
