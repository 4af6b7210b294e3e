package assistant

import "errors"

var (
	// ErrUnknownTool возвращается для неизвестного имени инструмента
	ErrUnknownTool = errors.New("assistant: unknown tool")

	// ErrInvalidArguments возвращается, когда аргументы инструмента не разбираются
	ErrInvalidArguments = errors.New("assistant: invalid tool arguments")
)
