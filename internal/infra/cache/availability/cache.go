package availability

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const (
	configKey    = "availability:config:active"
	blackoutsKey = "availability:blackouts"
)

// Store cache-aside для активной конфигурации и blackout-дат.
//
// Редко меняющиеся данные читаются из redis, при промахе - из репозитория с записью в кэш.
// Ошибки redis не ломают чтение: запрос уходит в репозиторий, ошибка пишется в лог.
// После любой записи в конфигурацию или blackout-даты вызывающий код обязан вызвать Invalidate.
type Store struct {
	client    Client
	configs   ConfigRepository
	blackouts BlackoutRepository
	ttl       time.Duration
	metrics   Metrics
	logger    Logger
}

// NewStore создает кэш поверх репозиториев; metrics может быть nil
func NewStore(
	client Client,
	configs ConfigRepository,
	blackouts BlackoutRepository,
	ttl time.Duration,
	metrics Metrics,
	logger Logger,
) *Store {
	return &Store{
		client:    client,
		configs:   configs,
		blackouts: blackouts,
		ttl:       ttl,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetActive возвращает активную конфигурацию
func (s *Store) GetActive(ctx context.Context) (*domain.AvailabilityConfig, error) {
	var cached domain.AvailabilityConfig
	if s.load(ctx, configKey, &cached) {
		return &cached, nil
	}

	config, err := s.configs.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	s.store(ctx, configKey, config)
	return config, nil
}

// GetAll возвращает все blackout-даты
func (s *Store) GetAll(ctx context.Context) ([]domain.BlackoutDate, error) {
	var cached []domain.BlackoutDate
	if s.load(ctx, blackoutsKey, &cached) {
		return cached, nil
	}

	blackouts, err := s.blackouts.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.store(ctx, blackoutsKey, blackouts)
	return blackouts, nil
}

// Invalidate удаляет закэшированные значения
func (s *Store) Invalidate(ctx context.Context) {
	if err := s.client.Del(ctx, configKey, blackoutsKey).Err(); err != nil {
		s.logger.Error("AvailabilityCache: failed to invalidate: %v", err)
	}
}

func (s *Store) load(ctx context.Context, key string, dest interface{}) bool {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("AvailabilityCache: failed to read %s: %v", key, err)
		}
		s.observe(key, false)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("AvailabilityCache: corrupted value for %s: %v", key, err)
		s.observe(key, false)
		return false
	}

	s.observe(key, true)
	return true
}

func (s *Store) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("AvailabilityCache: failed to encode %s: %v", key, err)
		return
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("AvailabilityCache: failed to write %s: %v", key, err)
	}
}

func (s *Store) observe(key string, hit bool) {
	if s.metrics != nil {
		s.metrics.ObserveCache(key, hit)
	}
}

// NoopInvalidator используется, когда redis выключен и инвалидировать нечего
type NoopInvalidator struct{}

func (NoopInvalidator) Invalidate(context.Context) {}
