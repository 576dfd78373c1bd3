package blackout

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/pkg/dbmetrics"
	"github.com/salonbook/salon-booking-service/pkg/psqlbuilder"
)

var ruleColumns = []string{
	"id",
	"title",
	"anchor_date",
	"start_time",
	"end_time",
	"is_recurring",
	"recurrence_kind",
	"occurrence_count",
	"created_at",
}

// Repository репозиторий правил блокировки времени
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил блокировки
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое правило блокировки
func (r *Repository) Create(ctx context.Context, rule *domain.BlackoutRule) (*domain.BlackoutRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blackout_rules").
		Columns(
			"title",
			"anchor_date",
			"start_time",
			"end_time",
			"is_recurring",
			"recurrence_kind",
			"occurrence_count",
		).
		Values(
			rule.Title,
			rule.AnchorDate,
			rule.StartTime,
			rule.EndTime,
			rule.IsRecurring,
			string(rule.RecurrenceKind),
			rule.OccurrenceCount,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	return rule, nil
}

// List получает все правила блокировки, по возрастанию якорной даты
func (r *Repository) List(ctx context.Context) ([]*domain.BlackoutRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("blackout_rules").
		OrderBy("anchor_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.BlackoutRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// Delete удаляет правило блокировки по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blackout_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

func scanRule(row squirrel.RowScanner) (*domain.BlackoutRule, error) {
	var rule domain.BlackoutRule
	var kind string
	var createdAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.Title,
		&rule.AnchorDate,
		&rule.StartTime,
		&rule.EndTime,
		&rule.IsRecurring,
		&kind,
		&rule.OccurrenceCount,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	rule.RecurrenceKind = domain.RecurrenceKind(kind)
	rule.CreatedAt = createdAt.Time
	return &rule, nil
}
