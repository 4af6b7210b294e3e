package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, limits Limits) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// nil означает длительность по умолчанию, она проверяется после загрузки конфигурации
	if req.DurationMinutes == nil {
		return nil
	}

	return validateDuration(*req.DurationMinutes, limits)
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
