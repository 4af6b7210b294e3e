package availability

import "errors"

var (
	// ErrConfigNotFound возвращается, когда нет активной конфигурации
	ErrConfigNotFound = errors.New("availability: config not found")

	// ErrBlackoutNotFound возвращается, когда blackout-дата не найдена
	ErrBlackoutNotFound = errors.New("availability: blackout date not found")

	// ErrBlackoutExists возвращается при повторном добавлении той же даты
	ErrBlackoutExists = errors.New("availability: blackout date already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
