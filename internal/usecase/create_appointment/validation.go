package create_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest нормализует и валидирует входные данные запроса
func validateRequest(req *Request, limits Limits) error {
	req.CustomerName = domain.NormalizeCustomerName(req.CustomerName)
	req.CustomerPhone = domain.NormalizePhone(req.CustomerPhone)

	if err := domain.ValidateCustomerName(req.CustomerName); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidatePhone(req.CustomerPhone); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	email, err := domain.NormalizeEmail(req.CustomerEmail)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	req.CustomerEmail = email

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: datetime is required", ErrInvalidInput)
	}

	// nil означает длительность услуги или конфигурации
	if req.DurationMinutes != nil {
		if err := validateDuration(*req.DurationMinutes, limits); err != nil {
			return err
		}
	}

	if err := domain.ValidateNotes(req.Notes); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

func validateDuration(duration int, limits Limits) error {
	if duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidInput, duration)
	}
	if duration < limits.MinDurationMinutes || duration > limits.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes, got %d",
			ErrInvalidInput, limits.MinDurationMinutes, limits.MaxDurationMinutes, duration)
	}
	return nil
}
