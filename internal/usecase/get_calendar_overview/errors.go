package get_calendar_overview

import "errors"

var (
	// ErrConfigNotFound возвращается, когда нет активной конфигурации доступности
	ErrConfigNotFound = errors.New("get_calendar_overview: availability config not found")

	// ErrInvalidInput возвращается при некорректном периоде
	ErrInvalidInput = errors.New("get_calendar_overview: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar_overview: internal error")
)
