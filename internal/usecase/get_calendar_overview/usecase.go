package get_calendar_overview

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
)

// UseCase use case для обзорной сводки календаря за период
type UseCase struct {
	appointmentRepo AppointmentRepository
	configRepo      ConfigRepository
	blackoutRepo    BlackoutRepository
	settings        Settings
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configRepo ConfigRepository,
	blackoutRepo BlackoutRepository,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.DurationMinutes <= 0 {
		settings.DurationMinutes = domain.DefaultOverviewDurationMinutes
	}
	if settings.MaxPeriodDays <= 0 {
		settings.MaxPeriodDays = domain.MaxOverviewPeriodDays
	}

	return &UseCase{
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		blackoutRepo:    blackoutRepo,
		settings:        settings,
		logger:          logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendarOverview: startDate=%s, endDate=%s", req.StartDate, req.EndDate)

	// 1. Валидация периода
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarOverview: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активную конфигурацию
	config, err := uc.configRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetCalendarOverview: no active availability config")
			return nil, ErrConfigNotFound
		}
		uc.logger.Error("GetCalendarOverview: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 3. Получаем blackout-даты
	blackouts, err := uc.blackoutRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetCalendarOverview: failed to get blackout dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackout dates: %v", ErrInternal, err)
	}

	// 4. Получаем неотмененные записи за весь период включительно
	filter := domain.AppointmentsFilter{
		StartDate: &req.StartDate,
		EndDate:   &req.EndDate,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendarOverview: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	flat := make([]domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt != nil {
			flat = append(flat, *appt)
		}
	}

	// 5. Считаем сводку
	engine, err := availability.NewEngine(config.StepOrDefault())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	summary, err := engine.ComputePeriodSummary(req.StartDate, req.EndDate, config.WeeklySchedule, blackouts, flat, uc.settings.DurationMinutes)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: failed to compute summary: %v", ErrInternal, err)
	}

	uc.logger.Info("GetCalendarOverview: %s..%s appointments=%d, availableSlots=%d",
		req.StartDate, req.EndDate, summary.TotalAppointments, summary.TotalAvailableSlots)

	return &Response{
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		TotalAppointments: summary.TotalAppointments,
		AvailableSlots:    summary.TotalAvailableSlots,
		BusySlots:         summary.TotalAppointments,
	}, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate %s is before startDate %s", ErrInvalidInput, req.EndDate, req.StartDate)
	}
	if days := req.StartDate.DaysUntil(req.EndDate); days > uc.settings.MaxPeriodDays {
		return fmt.Errorf("%w: period of %d days exceeds the limit of %d", ErrInvalidInput, days, uc.settings.MaxPeriodDays)
	}
	return nil
}
