package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

const table = "availability_configs"

// Repository репозиторий конфигурации доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive получает активную конфигурацию.
// Конфигурация передается движку явно, глобального состояния нет.
func (r *Repository) GetActive(ctx context.Context) (*domain.AvailabilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"weekly_schedule",
		"slot_step_minutes",
		"default_duration_minutes",
		"is_active",
		"created_at",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	var (
		config               domain.AvailabilityConfig
		schedule             []byte
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&schedule,
		&config.SlotStepMinutes,
		&config.DefaultDurationMinutes,
		&config.IsActive,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - scan config: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(schedule, &config.WeeklySchedule); err != nil {
		return nil, fmt.Errorf("%w: config id=%d: %v", ErrInvalidSchedule, config.ID, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Create сохраняет новую активную конфигурацию
func (r *Repository) Create(ctx context.Context, config *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedule, err := json.Marshal(config.WeeklySchedule)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal schedule: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"weekly_schedule",
			"slot_step_minutes",
			"default_duration_minutes",
			"is_active",
		).
		Values(
			string(schedule),
			config.SlotStepMinutes,
			config.DefaultDurationMinutes,
			true,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	config.IsActive = true
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// Update перезаписывает расписание и параметры слотов конфигурации
func (r *Repository) Update(ctx context.Context, config *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedule, err := json.Marshal(config.WeeklySchedule)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal schedule: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update(table).
		Set("weekly_schedule", string(schedule)).
		Set("slot_step_minutes", config.SlotStepMinutes).
		Set("default_duration_minutes", config.DefaultDurationMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": config.ID}).
		Suffix("RETURNING is_active, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&config.IsActive, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}
