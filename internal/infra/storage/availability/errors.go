package availability

import "errors"

var (
	// ErrConfigNotFound возвращается, когда активная конфигурация не найдена
	ErrConfigNotFound = errors.New("availability.repository: config not found")

	// ErrInvalidSchedule возвращается, когда сохраненное расписание не удалось разобрать
	ErrInvalidSchedule = errors.New("availability.repository: invalid stored schedule")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
