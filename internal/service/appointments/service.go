package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/appointment"
	"github.com/salonbook/salon-booking-service/internal/service/appointments/models"
)

// Service сервис для управления записями со стороны персонала
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List возвращает записи для панели персонала.
// Если указана дата — только записи на эту дату; иначе все записи
// начиная с From (по умолчанию — с сегодняшнего дня).
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if !req.Date.IsZero() {
		appointments, err := s.appointmentRepo.ListByDate(ctx, req.Date)
		if err != nil {
			s.logger.Error("List: repository error: %v", err)
			return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
		return models.FromDomainAppointmentList(appointments), nil
	}

	from := req.From
	if from.IsZero() {
		now := time.Now()
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	appointments, err := s.appointmentRepo.ListFromDate(ctx, from)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// Delete отменяет запись.
// Удаление немедленно освобождает слот для новых бронирований.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: cancelling appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully cancelled appointment id=%d", id)
	return nil
}
