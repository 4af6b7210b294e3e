package blackout

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/pgerr"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

const table = "blackout_dates"

// Repository репозиторий blackout-дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория blackout-дат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все blackout-даты, отсортированные по дате.
// Повторяющиеся даты действуют в любом году, поэтому фильтра по периоду нет.
func (r *Repository) GetAll(ctx context.Context) ([]domain.BlackoutDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"reason",
		"is_recurring",
		"created_at",
		"updated_at",
	).
		From(table).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blackouts := make([]domain.BlackoutDate, 0)
	for rows.Next() {
		var (
			b                    domain.BlackoutDate
			createdAt, updatedAt sql.NullTime
		)
		if err := rows.Scan(&b.ID, &b.Date, &b.Reason, &b.IsRecurring, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		blackouts = append(blackouts, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return blackouts, nil
}

// Create добавляет blackout-дату
func (r *Repository) Create(ctx context.Context, blackout *domain.BlackoutDate) (*domain.BlackoutDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("date", "reason", "is_recurring").
		Values(blackout.Date, blackout.Reason, blackout.IsRecurring).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&blackout.ID, &createdAt, &updatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, blackout.Date)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blackout.CreatedAt = createdAt.Time
	blackout.UpdatedAt = updatedAt.Time

	return blackout, nil
}

// Delete удаляет blackout-дату
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
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
		return ErrBlackoutNotFound
	}

	return nil
}
