package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/pgerr"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const table = "appointments"

var columns = []string{
	"id",
	"customer_name",
	"customer_phone",
	"customer_email",
	"appointment_date",
	"start_time",
	"duration_minutes",
	"status",
	"notes",
	"appointment_type",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция, использует её.
// Неотмененная запись на то же время нарушает уникальный индекс и возвращает ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"customer_name",
			"customer_phone",
			"customer_email",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"status",
			"notes",
			"appointment_type",
		).
		Values(
			appt.CustomerName,
			appt.CustomerPhone,
			appt.CustomerEmail,
			appt.StartsAt.Date(),
			appt.StartsAt.TimeOfDay(),
			appt.DurationMinutes,
			appt.Status,
			appt.Notes,
			appt.AppointmentType,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, classify("Create - execute insert", err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetWithFilter получает записи с фильтрацией по периоду и статусу.
//
// Для одного дня записи сортируются по времени начала (ASC), для периода - по дате и времени (DESC).
// Внутри транзакции выборка одного дня блокируется (FOR UPDATE): так создание записи
// проверяет доступность и вставляет запись, не пропуская параллельные изменения этого дня.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}

	// Конкретный статус важнее флага IncludeCancelled
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	if filter.IsSingleDay() {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC", "start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.IsSingleDay() {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify("GetWithFilter - execute query", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Update обновляет все изменяемые поля записи
func (r *Repository) Update(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("customer_name", appt.CustomerName).
		Set("customer_phone", appt.CustomerPhone).
		Set("customer_email", appt.CustomerEmail).
		Set("appointment_date", appt.StartsAt.Date()).
		Set("start_time", appt.StartsAt.TimeOfDay()).
		Set("duration_minutes", appt.DurationMinutes).
		Set("status", appt.Status).
		Set("notes", appt.Notes).
		Set("appointment_type", appt.AppointmentType).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appt.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, classify("Update - execute update", err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return classify("UpdateStatus - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// classify переводит ошибки PostgreSQL в ошибки репозитория
func classify(op string, err error) error {
	switch {
	case pgerr.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrSlotTaken, op, err)
	case pgerr.IsSerializationFailure(err):
		return fmt.Errorf("%w: %s: %v", ErrConflict, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt                 domain.Appointment
		date                 types.Date
		startTime            types.TimeString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&appt.CustomerName,
		&appt.CustomerPhone,
		&appt.CustomerEmail,
		&date,
		&startTime,
		&appt.DurationMinutes,
		&appt.Status,
		&appt.Notes,
		&appt.AppointmentType,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	startsAt, err := types.NewWallClock(date, startTime)
	if err != nil {
		return nil, fmt.Errorf("appointment id=%d: %v", appt.ID, err)
	}

	appt.StartsAt = startsAt
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
