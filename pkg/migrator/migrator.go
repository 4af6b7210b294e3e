package migrator

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет встроенные SQL-миграции через goose
type Migrator struct {
	db     *sql.DB
	logger Logger
}

// New создает мигратор для PostgreSQL
func New(db *sql.DB, logger Logger) (*Migrator, error) {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}

	return &Migrator{db: db, logger: logger}, nil
}

// Up применяет все непримененные миграции
func (m *Migrator) Up(ctx context.Context) error {
	m.logger.Info("Applying database migrations...")

	if err := goose.UpContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := m.Version(ctx)
	if err != nil {
		return err
	}

	m.logger.Info("Migrations applied, schema version=%d", version)
	return nil
}

// Version возвращает текущую версию схемы
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("get schema version: %w", err)
	}
	return version, nil
}
