package availability

import "errors"

// ErrInvalidInput возвращается при структурно некорректных входных данных:
// неположительная длительность, некорректное расписание, перевернутый период.
// Отсутствие свободных слотов ошибкой не является.
var ErrInvalidInput = errors.New("availability: invalid input")
