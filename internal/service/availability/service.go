package availability

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	blackoutRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/blackout"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Settings значения по умолчанию и ограничения для конфигурации
type Settings struct {
	DefaultSlotStepMinutes int
	DefaultDurationMinutes int
	MinDurationMinutes     int
	MaxDurationMinutes     int
}

// Service сервис администрирования доступности: расписание и blackout-даты
type Service struct {
	configRepo   ConfigRepository
	blackoutRepo BlackoutRepository
	cache        Cache
	txManager    TransactionManager
	settings     Settings
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	configRepo ConfigRepository,
	blackoutRepo BlackoutRepository,
	cache Cache,
	txManager TransactionManager,
	settings Settings,
	logger Logger,
) *Service {
	if settings.DefaultSlotStepMinutes <= 0 {
		settings.DefaultSlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if settings.DefaultDurationMinutes <= 0 {
		settings.DefaultDurationMinutes = domain.DefaultAppointmentMinutes
	}
	if settings.MinDurationMinutes <= 0 {
		settings.MinDurationMinutes = domain.MinDurationMinutes
	}
	if settings.MaxDurationMinutes <= 0 {
		settings.MaxDurationMinutes = domain.MaxDurationMinutes
	}

	return &Service{
		configRepo:   configRepo,
		blackoutRepo: blackoutRepo,
		cache:        cache,
		txManager:    txManager,
		settings:     settings,
		logger:       logger,
	}
}

// GetActiveConfig получает активную конфигурацию
func (s *Service) GetActiveConfig(ctx context.Context) (*models.ConfigResponse, error) {
	s.logger.Info("GetActiveConfig: fetching active config")

	config, err := s.configRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrConfigNotFound) {
			s.logger.Warn("GetActiveConfig: no active config")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("GetActiveConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetActiveConfig - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config), nil
}

// UpdateConfig обновляет активную конфигурацию или создает её, если активной нет.
// Поддерживает частичное обновление - меняются только переданные поля.
func (s *Service) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: schedule=%t, step=%t, defaultDuration=%t",
		req.WeeklySchedule != nil, req.SlotStepMinutes != nil, req.DefaultDurationMinutes != nil)

	var saved *domain.AvailabilityConfig

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем текущую конфигурацию
		current, err := s.configRepo.GetActive(txCtx)
		if err != nil && !errors.Is(err, availabilityRepo.ErrConfigNotFound) {
			return fmt.Errorf("%w: UpdateConfig - get active config: %v", ErrInternal, err)
		}

		create := current == nil
		if create {
			if req.WeeklySchedule == nil {
				return fmt.Errorf("%w: weeklySchedule is required to create the config", ErrInvalidInput)
			}
			current = &domain.AvailabilityConfig{
				SlotStepMinutes:        s.settings.DefaultSlotStepMinutes,
				DefaultDurationMinutes: s.settings.DefaultDurationMinutes,
			}
		}

		// 2. Применяем изменения и валидируем
		if req.WeeklySchedule != nil {
			current.WeeklySchedule = *req.WeeklySchedule
		}
		if req.SlotStepMinutes != nil {
			current.SlotStepMinutes = *req.SlotStepMinutes
		}
		if req.DefaultDurationMinutes != nil {
			current.DefaultDurationMinutes = *req.DefaultDurationMinutes
		}

		if err := s.validateConfig(current); err != nil {
			return err
		}

		// 3. Сохраняем
		if create {
			saved, err = s.configRepo.Create(txCtx, current)
		} else {
			saved, err = s.configRepo.Update(txCtx, current)
		}
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrConfigNotFound) {
				return ErrConfigNotFound
			}
			return fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrConfigNotFound) {
			s.logger.Warn("UpdateConfig: %v", err)
			return nil, err
		}
		s.logger.Error("UpdateConfig: failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: UpdateConfig - transaction failed: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx)

	s.logger.Info("UpdateConfig: successfully saved config id=%d", saved.ID)
	return models.FromDomainConfig(saved), nil
}

// ListBlackoutDates получает все blackout-даты
func (s *Service) ListBlackoutDates(ctx context.Context) (*models.BlackoutListResponse, error) {
	blackouts, err := s.blackoutRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListBlackoutDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlackoutDates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlackoutDates: fetched %d blackout dates", len(blackouts))
	return models.FromDomainBlackoutList(blackouts), nil
}

// AddBlackoutDate добавляет blackout-дату
func (s *Service) AddBlackoutDate(ctx context.Context, req *models.AddBlackoutRequest) (*models.BlackoutResponse, error) {
	s.logger.Info("AddBlackoutDate: date=%s, recurring=%t", req.Date, req.IsRecurring)

	date, err := types.ParseDate(req.Date)
	if err != nil {
		s.logger.Warn("AddBlackoutDate: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}
	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxBlackoutReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxBlackoutReasonLength)
	}

	created, err := s.blackoutRepo.Create(ctx, &domain.BlackoutDate{
		Date:        date,
		Reason:      req.Reason,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		if errors.Is(err, blackoutRepo.ErrAlreadyExists) {
			s.logger.Warn("AddBlackoutDate: %s already exists", date)
			return nil, ErrBlackoutExists
		}
		s.logger.Error("AddBlackoutDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddBlackoutDate - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx)

	s.logger.Info("AddBlackoutDate: successfully created blackout id=%d", created.ID)
	return models.FromDomainBlackout(created), nil
}

// RemoveBlackoutDate удаляет blackout-дату
func (s *Service) RemoveBlackoutDate(ctx context.Context, id int64) error {
	s.logger.Info("RemoveBlackoutDate: id=%d", id)

	if err := s.blackoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blackoutRepo.ErrBlackoutNotFound) {
			s.logger.Warn("RemoveBlackoutDate: id=%d not found", id)
			return ErrBlackoutNotFound
		}
		s.logger.Error("RemoveBlackoutDate: repository error: %v", err)
		return fmt.Errorf("%w: RemoveBlackoutDate - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx)
	return nil
}

func (s *Service) validateConfig(c *domain.AvailabilityConfig) error {
	if err := c.WeeklySchedule.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if c.SlotStepMinutes < domain.MinSlotStepMinutes || c.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: slotStepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}

	if c.DefaultDurationMinutes < s.settings.MinDurationMinutes || c.DefaultDurationMinutes > s.settings.MaxDurationMinutes {
		return fmt.Errorf("%w: defaultDuration must be between %d and %d",
			ErrInvalidInput, s.settings.MinDurationMinutes, s.settings.MaxDurationMinutes)
	}

	return nil
}
