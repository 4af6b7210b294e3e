package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	ErrCannotCancel = errors.New("appointments: appointment cannot be cancelled")

	// ErrInvalidStatusTransition возвращается при недопустимой смене статуса
	ErrInvalidStatusTransition = errors.New("appointments: invalid status transition")

	// ErrSlotNotAvailable возвращается, когда новое время записи занято или недоступно
	ErrSlotNotAvailable = errors.New("appointments: slot is not available")

	// ErrConfigNotFound возвращается, когда нет активной конфигурации доступности
	ErrConfigNotFound = errors.New("appointments: availability config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
