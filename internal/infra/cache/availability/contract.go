package availability

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Client подмножество команд redis, которое использует кэш (*redis.Client его реализует)
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ConfigRepository источник активной конфигурации
type ConfigRepository interface {
	GetActive(ctx context.Context) (*domain.AvailabilityConfig, error)
}

// BlackoutRepository источник blackout-дат
type BlackoutRepository interface {
	GetAll(ctx context.Context) ([]domain.BlackoutDate, error)
}

// Metrics учет попаданий в кэш
type Metrics interface {
	ObserveCache(key string, hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
