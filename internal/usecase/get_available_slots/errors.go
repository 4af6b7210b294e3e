package get_available_slots

import "errors"

var (
	// ErrConfigNotFound возвращается, когда нет активной конфигурации доступности
	ErrConfigNotFound = errors.New("get_available_slots: availability config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
