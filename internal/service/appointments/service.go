package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Limits допустимый диапазон длительности записи
type Limits struct {
	MinDurationMinutes int
	MaxDurationMinutes int
}

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	configRepo      ConfigRepository
	blackoutRepo    BlackoutRepository
	txManager       TransactionManager
	publisher       EventPublisher
	limits          Limits
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	configRepo ConfigRepository,
	blackoutRepo BlackoutRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	limits Limits,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		blackoutRepo:    blackoutRepo,
		txManager:       txManager,
		publisher:       publisher,
		limits:          limits,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи с фильтрацией по периоду и статусу.
// По умолчанию отмененные записи не возвращаются.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("List: fetching appointments, startDate=%v, endDate=%v, includeCancelled=%t",
		filter.StartDate, filter.EndDate, filter.IncludeCancelled)

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Update частично обновляет запись.
//
// Смена времени или длительности повторно проверяется движком доступности в сериализуемой
// транзакции, сама запись при проверке не учитывается. Отмена через Update публикует событие так же, как Cancel.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%d", id)

	reschedule := req.Datetime != nil || req.DurationMinutes != nil

	var (
		updated      *domain.Appointment
		cancelledNow bool
	)

	run := s.txManager.Do
	if reschedule {
		run = s.txManager.DoSerializable
	}

	err := run(ctx, func(txCtx context.Context) error {
		// 1. Получаем текущую запись
		current, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: Update - get appointment: %v", ErrInternal, err)
		}

		// 2. Применяем изменения и валидируем
		next := *current
		if err := s.apply(&next, req); err != nil {
			return err
		}

		if !current.Status.CanTransitionTo(next.Status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, next.Status)
		}

		// 3. Проверяем новое время, если оно изменилось у неотмененной записи
		timeChanged := !next.StartsAt.Equal(current.StartsAt) || next.DurationMinutes != current.DurationMinutes
		if timeChanged && next.IsActive() {
			if err := s.checkSlot(txCtx, &next); err != nil {
				return err
			}
		}

		// 4. Сохраняем
		saved, err := s.appointmentRepo.Update(txCtx, &next)
		if err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
				return ErrAppointmentNotFound
			case errors.Is(err, appointmentRepo.ErrSlotTaken), errors.Is(err, appointmentRepo.ErrConflict):
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated = saved
		cancelledNow = current.Status != domain.StatusCancelled && saved.Status == domain.StatusCancelled
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) && reschedule {
			s.logger.Warn("Update: concurrent change while rescheduling appointment id=%d: %v", id, err)
			return nil, ErrSlotNotAvailable
		}
		if isBusinessError(err) {
			s.logger.Warn("Update: appointment id=%d: %v", id, err)
			return nil, err
		}
		s.logger.Error("Update: failed to update appointment id=%d: %v", id, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Update - transaction failed: %v", ErrInternal, err)
	}

	if cancelledNow {
		s.publishCancelled(ctx, updated)
	}

	s.logger.Info("Update: successfully updated appointment id=%d", id)
	return models.FromDomainAppointment(updated), nil
}

// Cancel отменяет запись. Отменить можно только pending или confirmed запись.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	var cancelled *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: Cancel - get appointment: %v", ErrInternal, err)
		}

		if !appt.CanBeCancelled() {
			return fmt.Errorf("%w: status is %s", ErrCannotCancel, appt.Status)
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, domain.StatusCancelled); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		appt.Status = domain.StatusCancelled
		cancelled = appt
		return nil
	})

	if err != nil {
		if isBusinessError(err) {
			s.logger.Warn("Cancel: appointment id=%d: %v", id, err)
			return nil, err
		}
		s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", id, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Cancel - transaction failed: %v", ErrInternal, err)
	}

	s.publishCancelled(ctx, cancelled)

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return models.FromDomainAppointment(cancelled), nil
}

// apply переносит изменения из запроса в запись
func (s *Service) apply(appt *domain.Appointment, req *models.UpdateRequest) error {
	if req.CustomerName != nil {
		name := domain.NormalizeCustomerName(*req.CustomerName)
		if err := domain.ValidateCustomerName(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		appt.CustomerName = name
	}

	if req.CustomerPhone != nil {
		phone := domain.NormalizePhone(*req.CustomerPhone)
		if err := domain.ValidatePhone(phone); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		appt.CustomerPhone = phone
	}

	if req.CustomerEmail != nil {
		email, err := domain.NormalizeEmail(req.CustomerEmail)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		appt.CustomerEmail = email
	}

	if req.Datetime != nil {
		startsAt, err := types.ParseWallClock(*req.Datetime)
		if err != nil {
			return fmt.Errorf("%w: datetime: %v", ErrInvalidInput, err)
		}
		appt.StartsAt = startsAt
	}

	if req.DurationMinutes != nil {
		d := *req.DurationMinutes
		if d < s.limits.MinDurationMinutes || d > s.limits.MaxDurationMinutes {
			return fmt.Errorf("%w: duration must be between %d and %d minutes, got %d",
				ErrInvalidInput, s.limits.MinDurationMinutes, s.limits.MaxDurationMinutes, d)
		}
		appt.DurationMinutes = d
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		appt.Status = status
	}

	if req.Notes != nil {
		if err := domain.ValidateNotes(req.Notes); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		appt.Notes = req.Notes
	}

	if req.AppointmentType != nil {
		appt.AppointmentType = req.AppointmentType
	}

	return nil
}

// checkSlot проверяет, что новое время записи можно забронировать
func (s *Service) checkSlot(ctx context.Context, appt *domain.Appointment) error {
	config, err := s.configRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrConfigNotFound) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("%w: checkSlot - get config: %v", ErrInternal, err)
	}

	blackouts, err := s.blackoutRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: checkSlot - get blackout dates: %v", ErrInternal, err)
	}

	day := appt.StartsAt.Date()
	dayAppointments, err := s.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		StartDate: &day,
		EndDate:   &day,
	})
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrConflict) {
			return ErrSlotNotAvailable
		}
		return fmt.Errorf("%w: checkSlot - get appointments: %v", ErrInternal, err)
	}

	// Сама переносимая запись не должна блокировать новое время
	others := make([]domain.Appointment, 0, len(dayAppointments))
	for _, other := range dayAppointments {
		if other != nil && other.ID != appt.ID {
			others = append(others, *other)
		}
	}

	engine, err := availability.NewEngine(config.StepOrDefault())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	bookable, err := engine.IsSlotBookable(day, config.WeeklySchedule, blackouts, appt.StartsAt, appt.DurationMinutes, others)
	if err != nil {
		return fmt.Errorf("%w: checkSlot - engine: %v", ErrInternal, err)
	}
	if !bookable {
		return fmt.Errorf("%w: %s (%d min)", ErrSlotNotAvailable, appt.StartsAt, appt.DurationMinutes)
	}

	return nil
}

func (s *Service) publishCancelled(ctx context.Context, appt *domain.Appointment) {
	if err := s.publisher.AppointmentCancelled(ctx, appt); err != nil {
		s.logger.Error("publishCancelled: failed to publish event for id=%d: %v", appt.ID, err)
	}
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrAppointmentNotFound) ||
		errors.Is(err, ErrCannotCancel) ||
		errors.Is(err, ErrInvalidStatusTransition) ||
		errors.Is(err, ErrSlotNotAvailable) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrInvalidInput)
}
