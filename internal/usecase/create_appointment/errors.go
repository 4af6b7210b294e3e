package create_appointment

import "errors"

var (
	// ErrConfigNotFound возвращается, когда нет активной конфигурации доступности
	ErrConfigNotFound = errors.New("create_appointment: availability config not found")

	// ErrSlotNotAvailable возвращается, когда запрошенное время нельзя забронировать:
	// вне расписания, не выровнено по шагу, blackout-день или время уже занято
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
