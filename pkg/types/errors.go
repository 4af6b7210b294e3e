package types

import "errors"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда время выходит за пределы суток
	ErrTimeOverflow = errors.New("time is out of day bounds")

	// ErrInvalidDate возвращается при некорректном формате даты (ожидается YYYY-MM-DD)
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidWallClock возвращается при некорректном формате даты и времени
	ErrInvalidWallClock = errors.New("invalid local datetime format")

	// ErrUnsupportedScanType возвращается, когда драйвер БД вернул значение неожиданного типа
	ErrUnsupportedScanType = errors.New("unsupported scan type")
)
