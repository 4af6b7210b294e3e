package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	configRepo      ConfigRepository
	blackoutRepo    BlackoutRepository
	catalog         ServiceCatalog
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	limits          Limits
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configRepo ConfigRepository,
	blackoutRepo BlackoutRepository,
	catalog ServiceCatalog,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	limits Limits,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		blackoutRepo:    blackoutRepo,
		catalog:         catalog,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		limits:          limits,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
//
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции: записи дня
// читаются с блокировкой (FOR UPDATE), а уникальный индекс на (дата, время начала) отсекает
// параллельную вставку. Любой конфликт превращается в ErrSlotNotAvailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: phone=%s, startsAt=%s, duration=%d",
		req.CustomerPhone, req.StartsAt, ptr.Value(req.DurationMinutes))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.limits); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.observe(metrics.OutcomeRejected)
		return nil, err
	}

	// 2. Длительность услуги каталога, если длительность не задана явно
	requested := req.DurationMinutes
	if requested == nil && req.AppointmentType != nil {
		serviceDuration, err := uc.serviceDuration(ctx, *req.AppointmentType)
		if err != nil {
			uc.observe(metrics.OutcomeFailed)
			return nil, err
		}
		requested = serviceDuration
	}

	day := req.StartsAt.Date()

	var result *domain.Appointment

	// 3. Выполняем проверку и вставку в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем активную конфигурацию
		config, err := uc.configRepo.GetActive(txCtx)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrConfigNotFound) {
				uc.logger.Warn("CreateAppointment: no active availability config")
				return ErrConfigNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		duration := ptr.Value(requested)
		if requested == nil {
			duration = config.DefaultDurationMinutes
		}
		if err := validateDuration(duration, uc.limits); err != nil {
			uc.logger.Error("CreateAppointment: resolved duration is out of limits (config id=%d): %v", config.ID, err)
			return fmt.Errorf("%w: resolved duration: %v", ErrInternal, err)
		}

		// 3.2. Получаем blackout-даты
		blackouts, err := uc.blackoutRepo.GetAll(txCtx)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get blackout dates: %v", err)
			return fmt.Errorf("%w: failed to get blackout dates: %v", ErrInternal, err)
		}

		// 3.3. Получаем неотмененные записи дня с блокировкой (FOR UPDATE)
		filter := domain.AppointmentsFilter{
			StartDate: &day,
			EndDate:   &day,
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrConflict) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.4. Проверяем, что слот можно забронировать
		engine, err := availability.NewEngine(config.StepOrDefault())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		bookable, err := engine.IsSlotBookable(day, config.WeeklySchedule, blackouts, req.StartsAt, duration, derefAppointments(appointments))
		if err != nil {
			uc.logger.Error("CreateAppointment: engine failed for config id=%d: %v", config.ID, err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if !bookable {
			uc.logger.Warn("CreateAppointment: slot %s (%d min) is not available", req.StartsAt, duration)
			return ErrSlotNotAvailable
		}

		// 3.5. Создаем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   req.CustomerEmail,
			StartsAt:        req.StartsAt,
			DurationMinutes: duration,
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
			AppointmentType: req.AppointmentType,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) || errors.Is(err, appointmentRepo.ErrConflict) {
				uc.logger.Warn("CreateAppointment: slot %s taken concurrently: %v", req.StartsAt, err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable), errors.Is(err, txmanager.ErrSerializationFailure):
			uc.observe(metrics.OutcomeSlotTaken)
			return nil, ErrSlotNotAvailable
		case errors.Is(err, ErrConfigNotFound):
			uc.observe(metrics.OutcomeRejected)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.observe(metrics.OutcomeFailed)
			return nil, err
		default:
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
			uc.observe(metrics.OutcomeFailed)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.observe(metrics.OutcomeCreated)
	uc.logger.Info("CreateAppointment: successfully created appointment id=%d at %s", result.ID, result.StartsAt)

	// 4. Публикуем событие после фиксации транзакции, ошибка не отменяет запись
	if err := uc.publisher.AppointmentCreated(ctx, result); err != nil {
		uc.logger.Error("CreateAppointment: failed to publish event for id=%d: %v", result.ID, err)
	}

	return toResponse(result), nil
}

// serviceDuration возвращает длительность активной услуги с таким названием.
// Неизвестный тип записи допустим и не меняет длительность.
func (uc *UseCase) serviceDuration(ctx context.Context, name string) (*int, error) {
	if uc.catalog == nil {
		return nil, nil
	}

	service, err := uc.catalog.GetActiveByName(ctx, name)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, nil
		}
		uc.logger.Error("CreateAppointment: failed to get service %q: %v", name, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	return service.DurationMinutes, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveAppointmentCreate(outcome)
	}
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		CustomerName:    appt.CustomerName,
		CustomerPhone:   appt.CustomerPhone,
		CustomerEmail:   appt.CustomerEmail,
		StartsAt:        appt.StartsAt,
		EndsAt:          appt.EndsAt(),
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		Notes:           appt.Notes,
		AppointmentType: appt.AppointmentType,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}

func derefAppointments(appointments []*domain.Appointment) []domain.Appointment {
	result := make([]domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt != nil {
			result = append(result, *appt)
		}
	}
	return result
}
