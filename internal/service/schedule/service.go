package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/salonbook/salon-booking-service/internal/domain"
	blackoutRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/blackout"
	scheduleRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/schedule"
	"github.com/salonbook/salon-booking-service/internal/service/schedule/models"
)

// Service сервис для управления расписанием и блокировками
type Service struct {
	scheduleRepo ScheduleRepository
	blackoutRepo BlackoutRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	blackoutRepo BlackoutRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		blackoutRepo: blackoutRepo,
		logger:       logger,
	}
}

// GetWorkingHours возвращает действующее расписание.
// Если персонал еще не сохранял расписание, возвращаются значения
// по умолчанию.
func (s *Service) GetWorkingHours(ctx context.Context) (*models.WorkingHoursResponse, error) {
	policy, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrPolicyNotFound) {
			return models.FromDomainPolicy(domain.DefaultWorkingHoursPolicy()), nil
		}
		s.logger.Error("GetWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(policy), nil
}

// UpdateWorkingHours заменяет расписание целиком.
// Изменение действует немедленно: уже существующие записи не
// пересматриваются, но новые слоты считаются по новому расписанию.
func (s *Service) UpdateWorkingHours(ctx context.Context, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpdateWorkingHours: open=%s close=%s closedWeekdays=%v",
		req.OpenTime, req.CloseTime, req.ClosedWeekdays)

	// 1. Валидируем новое расписание
	if err := validateWorkingHours(req); err != nil {
		s.logger.Warn("UpdateWorkingHours: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем
	updated, err := s.scheduleRepo.Upsert(ctx, req.ToDomainPolicy())
	if err != nil {
		s.logger.Error("UpdateWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWorkingHours: schedule updated")
	return models.FromDomainPolicy(updated), nil
}

// ListBlackouts возвращает все правила блокировки
func (s *Service) ListBlackouts(ctx context.Context) (*models.BlackoutListResponse, error) {
	rules, err := s.blackoutRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBlackouts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlackouts - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRuleList(rules), nil
}

// CreateBlackout создает правило блокировки.
// Правило начинает действовать немедленно; уже существующие записи,
// попадающие в блокировку, не отменяются.
func (s *Service) CreateBlackout(ctx context.Context, req *models.CreateBlackoutRequest) (*models.BlackoutResponse, error) {
	s.logger.Info("CreateBlackout: title=%q anchor=%s recurring=%v",
		req.Title, req.AnchorDate.Format(domain.DateFormat), req.IsRecurring)

	// 1. Валидируем правило
	if err := validateBlackoutRule(req); err != nil {
		s.logger.Warn("CreateBlackout: validation failed: %v", err)
		return nil, err
	}

	// 2. Создаем
	created, err := s.blackoutRepo.Create(ctx, req.ToDomainRule())
	if err != nil {
		s.logger.Error("CreateBlackout: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlackout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlackout: successfully created rule id=%d", created.ID)
	return models.FromDomainRule(created), nil
}

// DeleteBlackout удаляет правило блокировки.
// Освободившиеся слоты сразу возвращаются в выдачу.
func (s *Service) DeleteBlackout(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlackout: deleting rule id=%d", id)

	if err := s.blackoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blackoutRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteBlackout: rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteBlackout: repository error: %v", err)
		return fmt.Errorf("%w: DeleteBlackout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlackout: successfully deleted rule id=%d", id)
	return nil
}

// validateWorkingHours проверяет бизнес-ограничения расписания
func validateWorkingHours(req *models.UpdateWorkingHoursRequest) error {
	if err := req.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid openTime: %v", ErrInvalidConfiguration, err)
	}
	if err := req.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidConfiguration, err)
	}

	if !req.OpenTime.IsBefore(req.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidConfiguration)
	}

	// Перерыв: либо оба конца, либо ни одного
	if (req.BreakStart == nil) != (req.BreakEnd == nil) {
		return fmt.Errorf("%w: breakStart and breakEnd must be set together", ErrInvalidConfiguration)
	}

	if req.BreakStart != nil {
		if err := req.BreakStart.Validate(); err != nil {
			return fmt.Errorf("%w: invalid breakStart: %v", ErrInvalidConfiguration, err)
		}
		if err := req.BreakEnd.Validate(); err != nil {
			return fmt.Errorf("%w: invalid breakEnd: %v", ErrInvalidConfiguration, err)
		}
		if !req.BreakStart.IsBefore(*req.BreakEnd) {
			return fmt.Errorf("%w: breakStart must be before breakEnd", ErrInvalidConfiguration)
		}
		// Перерыв целиком внутри рабочих часов
		if req.BreakStart.IsBefore(req.OpenTime) || req.BreakEnd.IsAfter(req.CloseTime) {
			return fmt.Errorf("%w: break must be inside working hours", ErrInvalidConfiguration)
		}
	}

	seen := make(map[int]bool, len(req.ClosedWeekdays))
	openDays := 7
	for _, day := range req.ClosedWeekdays {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: closedWeekdays values must be between 0 and 6", ErrInvalidConfiguration)
		}
		if seen[day] {
			return fmt.Errorf("%w: closedWeekdays contains duplicate value %d", ErrInvalidConfiguration, day)
		}
		seen[day] = true
		openDays--
	}

	// Хотя бы один рабочий день должен остаться
	if openDays == 0 {
		return fmt.Errorf("%w: at least one weekday must stay open", ErrInvalidConfiguration)
	}

	return nil
}

// validateBlackoutRule проверяет бизнес-ограничения правила блокировки
func validateBlackoutRule(req *models.CreateBlackoutRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidConfiguration)
	}
	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidConfiguration, domain.MaxTitleLength)
	}

	if req.AnchorDate.IsZero() {
		return fmt.Errorf("%w: anchorDate is required", ErrInvalidConfiguration)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidConfiguration, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidConfiguration, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidConfiguration)
	}

	if req.IsRecurring {
		kind := domain.RecurrenceKind(req.RecurrenceKind)
		if !kind.IsValid() || kind == domain.RecurrenceNone {
			return fmt.Errorf("%w: recurrenceKind must be daily, weekly or monthly", ErrInvalidConfiguration)
		}
		if req.OccurrenceCount < domain.MinOccurrenceCount || req.OccurrenceCount > domain.MaxOccurrenceCount {
			return fmt.Errorf("%w: occurrenceCount must be between %d and %d",
				ErrInvalidConfiguration, domain.MinOccurrenceCount, domain.MaxOccurrenceCount)
		}
	}

	return nil
}
