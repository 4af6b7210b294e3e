package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// UseCase use case для получения свободных слотов на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	configRepo      ConfigRepository
	blackoutRepo    BlackoutRepository
	limits          Limits
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configRepo ConfigRepository,
	blackoutRepo BlackoutRepository,
	limits Limits,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		blackoutRepo:    blackoutRepo,
		limits:          limits,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d", req.Date, ptr.Value(req.DurationMinutes))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.limits); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активную конфигурацию
	config, err := uc.configRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetAvailableSlots: no active availability config")
			return nil, ErrConfigNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	duration := ptr.Value(req.DurationMinutes)
	if req.DurationMinutes == nil {
		duration = config.DefaultDurationMinutes
		if err := validateDuration(duration, uc.limits); err != nil {
			uc.logger.Error("GetAvailableSlots: config id=%d has invalid default duration: %v", config.ID, err)
			return nil, fmt.Errorf("%w: invalid default duration: %v", ErrInternal, err)
		}
	}

	// 3. Получаем blackout-даты
	blackouts, err := uc.blackoutRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blackout dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackout dates: %v", ErrInternal, err)
	}

	if availability.IsBlackout(req.Date, blackouts) {
		uc.logger.Info("GetAvailableSlots: %s is a blackout date", req.Date)
		return &Response{
			Date:            req.Date,
			DurationMinutes: duration,
			IsBlackout:      true,
			Slots:           []domain.Slot{},
		}, nil
	}

	// 4. Получаем неотмененные записи на день
	filter := domain.AppointmentsFilter{
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Считаем свободные слоты
	engine, err := availability.NewEngine(config.StepOrDefault())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	slots, err := engine.GetAvailableSlots(req.Date, config.WeeklySchedule, blackouts, duration, derefAppointments(appointments))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: engine failed for config id=%d: %v", config.ID, err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d free slots on %s (duration=%d, booked=%d)",
		len(slots), req.Date, duration, len(appointments))

	return &Response{
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
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
