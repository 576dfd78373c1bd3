package models

import (
	"time"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// Request модели

// UpdateWorkingHoursRequest запрос на обновление расписания.
// Заменяет действующее расписание целиком.
type UpdateWorkingHoursRequest struct {
	OpenTime       types.TimeString  `json:"openTime"`
	CloseTime      types.TimeString  `json:"closeTime"`
	BreakStart     *types.TimeString `json:"breakStart,omitempty"`
	BreakEnd       *types.TimeString `json:"breakEnd,omitempty"`
	ClosedWeekdays []int             `json:"closedWeekdays"` // 0=воскресенье .. 6=суббота
}

// CreateBlackoutRequest запрос на создание правила блокировки
type CreateBlackoutRequest struct {
	Title           string           `json:"title"`
	AnchorDate      time.Time        `json:"anchorDate"`
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	IsRecurring     bool             `json:"isRecurring"`
	RecurrenceKind  string           `json:"recurrenceKind,omitempty"`  // none, daily, weekly, monthly
	OccurrenceCount int              `json:"occurrenceCount,omitempty"` // включая якорную дату
}

// Response модели

// WorkingHoursResponse ответ с действующим расписанием
type WorkingHoursResponse struct {
	OpenTime       types.TimeString  `json:"openTime"`
	CloseTime      types.TimeString  `json:"closeTime"`
	BreakStart     *types.TimeString `json:"breakStart,omitempty"`
	BreakEnd       *types.TimeString `json:"breakEnd,omitempty"`
	ClosedWeekdays []int             `json:"closedWeekdays"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// BlackoutResponse ответ с данными правила блокировки
type BlackoutResponse struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	AnchorDate      string           `json:"anchorDate"` // YYYY-MM-DD
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	IsRecurring     bool             `json:"isRecurring"`
	RecurrenceKind  string           `json:"recurrenceKind"`
	OccurrenceCount int              `json:"occurrenceCount,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// BlackoutListResponse ответ со списком правил блокировки
type BlackoutListResponse struct {
	Rules []BlackoutResponse `json:"rules"`
}

// Методы конвертации

// FromDomainPolicy конвертирует domain модель расписания в DTO
func FromDomainPolicy(p *domain.WorkingHoursPolicy) *WorkingHoursResponse {
	if p == nil {
		return nil
	}

	closed := p.ClosedWeekdays
	if closed == nil {
		closed = []int{}
	}

	return &WorkingHoursResponse{
		OpenTime:       p.OpenTime,
		CloseTime:      p.CloseTime,
		BreakStart:     p.BreakStart,
		BreakEnd:       p.BreakEnd,
		ClosedWeekdays: closed,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToDomainPolicy конвертирует UpdateWorkingHoursRequest в domain модель
func (r *UpdateWorkingHoursRequest) ToDomainPolicy() *domain.WorkingHoursPolicy {
	return &domain.WorkingHoursPolicy{
		OpenTime:       r.OpenTime,
		CloseTime:      r.CloseTime,
		BreakStart:     r.BreakStart,
		BreakEnd:       r.BreakEnd,
		ClosedWeekdays: r.ClosedWeekdays,
	}
}

// FromDomainRule конвертирует domain модель правила в DTO
func FromDomainRule(rule *domain.BlackoutRule) *BlackoutResponse {
	if rule == nil {
		return nil
	}

	return &BlackoutResponse{
		ID:              rule.ID,
		Title:           rule.Title,
		AnchorDate:      rule.AnchorDate.Format(domain.DateFormat),
		StartTime:       rule.StartTime,
		EndTime:         rule.EndTime,
		IsRecurring:     rule.IsRecurring,
		RecurrenceKind:  string(rule.RecurrenceKind),
		OccurrenceCount: rule.OccurrenceCount,
		CreatedAt:       rule.CreatedAt,
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.BlackoutRule) *BlackoutListResponse {
	resp := &BlackoutListResponse{
		Rules: make([]BlackoutResponse, 0, len(rules)),
	}

	for _, rule := range rules {
		if ruleResp := FromDomainRule(rule); ruleResp != nil {
			resp.Rules = append(resp.Rules, *ruleResp)
		}
	}

	return resp
}

// ToDomainRule конвертирует CreateBlackoutRequest в domain модель.
// Для неповторяющихся правил нормализует вид повторения в none.
func (r *CreateBlackoutRequest) ToDomainRule() *domain.BlackoutRule {
	kind := domain.RecurrenceKind(r.RecurrenceKind)
	count := r.OccurrenceCount
	if !r.IsRecurring {
		kind = domain.RecurrenceNone
		count = 0
	}

	anchor := time.Date(r.AnchorDate.Year(), r.AnchorDate.Month(), r.AnchorDate.Day(),
		0, 0, 0, 0, time.UTC)

	return &domain.BlackoutRule{
		Title:           r.Title,
		AnchorDate:      anchor,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		IsRecurring:     r.IsRecurring,
		RecurrenceKind:  kind,
		OccurrenceCount: count,
	}
}
