package blackout

import "errors"

var (
	// ErrBlackoutNotFound возвращается, когда blackout-дата не найдена
	ErrBlackoutNotFound = errors.New("blackout.repository: blackout date not found")

	// ErrAlreadyExists возвращается, когда blackout на эту дату уже есть
	ErrAlreadyExists = errors.New("blackout.repository: blackout date already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blackout.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blackout.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blackout.repository: failed to scan row")
)
