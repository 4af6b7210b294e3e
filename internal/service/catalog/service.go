package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 1000
	currencyLength       = 3
)

// Settings ограничения длительности услуги
type Settings struct {
	MinDurationMinutes int
	MaxDurationMinutes int
}

// Service сервис каталога услуг
type Service struct {
	repo      ServiceRepository
	txManager TransactionManager
	settings  Settings
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo ServiceRepository, txManager TransactionManager, settings Settings, logger Logger) *Service {
	if settings.MinDurationMinutes <= 0 {
		settings.MinDurationMinutes = domain.MinDurationMinutes
	}
	if settings.MaxDurationMinutes <= 0 {
		settings.MaxDurationMinutes = domain.MaxDurationMinutes
	}

	return &Service{
		repo:      repo,
		txManager: txManager,
		settings:  settings,
		logger:    logger,
	}
}

// ListServices получает услуги каталога; неактивные только по запросу
func (s *Service) ListServices(ctx context.Context, includeInactive bool) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: includeInactive=%t", includeInactive)

	services, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	resp := &models.ServiceListResponse{Services: make([]models.ServiceResponse, 0, len(services))}
	for _, service := range services {
		resp.Services = append(resp.Services, *models.FromDomainService(service))
	}

	return resp, nil
}

// CreateService добавляет услугу в каталог
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%q", req.Name)

	if req.PriceCents == nil {
		return nil, fmt.Errorf("%w: priceCents is required", ErrInvalidInput)
	}

	service := &domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		PriceCents:      *req.PriceCents,
		Currency:        domain.DefaultCurrency,
		DurationMinutes: req.DurationMinutes,
	}
	if req.Currency != nil {
		service.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}
	if req.SortOrder != nil {
		service.SortOrder = *req.SortOrder
	}

	if err := s.validate(service); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, service)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrAlreadyExists) {
			s.logger.Warn("CreateService: %q already exists", service.Name)
			return nil, ErrServiceExists
		}
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// UpdateService частично обновляет услугу
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: id=%d", id)

	var updated *domain.Service
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Читаем текущее состояние
		current, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: UpdateService - get service: %v", ErrInternal, err)
		}

		// 2. Накладываем изменения
		if req.Name != nil {
			current.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			current.Description = req.Description
		}
		if req.PriceCents != nil {
			current.PriceCents = *req.PriceCents
		}
		if req.Currency != nil {
			current.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
		}
		if req.DurationMinutes != nil {
			current.DurationMinutes = req.DurationMinutes
		}
		if req.SortOrder != nil {
			current.SortOrder = *req.SortOrder
		}

		if err := s.validate(current); err != nil {
			return err
		}

		// 3. Сохраняем
		updated, err = s.repo.Update(txCtx, current)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			if errors.Is(err, catalogRepo.ErrAlreadyExists) {
				return ErrServiceExists
			}
			return fmt.Errorf("%w: UpdateService - update service: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("UpdateService: id=%d failed: %v", id, err)
		return nil, err
	}

	s.logger.Info("UpdateService: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

// DeleteService снимает услугу с публикации; записи с ее именем остаются как есть
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: id=%d", id)

	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error: %v", err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) validate(service *domain.Service) error {
	if service.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(service.Name) > maxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, maxNameLength)
	}
	if service.Description != nil && utf8.RuneCountInString(*service.Description) > maxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidInput, maxDescriptionLength)
	}
	if service.PriceCents < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	if len(service.Currency) != currencyLength {
		return fmt.Errorf("%w: currency must be a %d-letter code", ErrInvalidInput, currencyLength)
	}
	for _, r := range service.Currency {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("%w: currency must be a %d-letter code", ErrInvalidInput, currencyLength)
		}
	}
	if d := service.DurationMinutes; d != nil && (*d < s.settings.MinDurationMinutes || *d > s.settings.MaxDurationMinutes) {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, s.settings.MinDurationMinutes, s.settings.MaxDurationMinutes)
	}
	return nil
}
