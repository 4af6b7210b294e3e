package catalog

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
)

const table = "services"

var columns = []string{
	"id",
	"name",
	"description",
	"price_cents",
	"currency",
	"duration_minutes",
	"is_active",
	"sort_order",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает услуги, отсортированные по sort_order и имени
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("sort_order ASC", "name ASC")
	if !includeInactive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetActiveByName получает активную услугу по имени без учета регистра
func (r *Repository) GetActiveByName(ctx context.Context, name string) (*domain.Service, error) {
	return r.getOne(ctx, "GetActiveByName", squirrel.And{
		squirrel.Expr("LOWER(name) = LOWER(?)", name),
		squirrel.Eq{"is_active": true},
	})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, op, err)
	}

	return service, nil
}

// Create добавляет услугу в каталог
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"name",
			"description",
			"price_cents",
			"currency",
			"duration_minutes",
			"sort_order",
		).
		Values(
			service.Name,
			service.Description,
			service.PriceCents,
			service.Currency,
			service.DurationMinutes,
			service.SortOrder,
		).
		Suffix("RETURNING id, is_active, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&service.ID, &service.IsActive, &createdAt, &updatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, service.Name)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

// Update перезаписывает редактируемые поля услуги
func (r *Repository) Update(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", service.Name).
		Set("description", service.Description).
		Set("price_cents", service.PriceCents).
		Set("currency", service.Currency).
		Set("duration_minutes", service.DurationMinutes).
		Set("sort_order", service.SortOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": service.ID}).
		Suffix("RETURNING is_active, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&service.IsActive, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, service.Name)
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

// Deactivate снимает услугу с публикации (мягкое удаление)
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var (
		service              domain.Service
		description          sql.NullString
		duration             sql.NullInt64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&service.ID,
		&service.Name,
		&description,
		&service.PriceCents,
		&service.Currency,
		&duration,
		&service.IsActive,
		&service.SortOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		service.Description = &description.String
	}
	if duration.Valid {
		minutes := int(duration.Int64)
		service.DurationMinutes = &minutes
	}
	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}
