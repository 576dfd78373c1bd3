package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/pkg/dbmetrics"
	"github.com/salonbook/salon-booking-service/pkg/psqlbuilder"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// singletonID расписание хранится единственной строкой
const singletonID = 1

// Repository репозиторий расписания работы салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает действующую политику рабочих часов
func (r *Repository) Get(ctx context.Context) (*domain.WorkingHoursPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"open_time",
		"close_time",
		"break_start",
		"break_end",
		"closed_weekdays",
		"updated_at",
	).
		From("working_hours").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var policy domain.WorkingHoursPolicy
	var breakStart, breakEnd types.TimeString
	var closedWeekdays pq.Int64Array
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.OpenTime,
		&policy.CloseTime,
		&breakStart,
		&breakEnd,
		&closedWeekdays,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan policy: %v", ErrScanRow, err)
	}

	if !breakStart.IsZero() {
		policy.BreakStart = &breakStart
	}
	if !breakEnd.IsZero() {
		policy.BreakEnd = &breakEnd
	}
	policy.ClosedWeekdays = make([]int, 0, len(closedWeekdays))
	for _, d := range closedWeekdays {
		policy.ClosedWeekdays = append(policy.ClosedWeekdays, int(d))
	}
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}

// Upsert сохраняет политику рабочих часов, заменяя существующую
func (r *Repository) Upsert(ctx context.Context, policy *domain.WorkingHoursPolicy) (*domain.WorkingHoursPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	closedWeekdays := make(pq.Int64Array, 0, len(policy.ClosedWeekdays))
	for _, d := range policy.ClosedWeekdays {
		closedWeekdays = append(closedWeekdays, int64(d))
	}

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns("id", "open_time", "close_time", "break_start", "break_end", "closed_weekdays").
		Values(singletonID, policy.OpenTime, policy.CloseTime, policy.BreakStart, policy.BreakEnd, closedWeekdays).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			closed_weekdays = EXCLUDED.closed_weekdays,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	policy.UpdatedAt = updatedAt.Time
	return policy, nil
}
