package execute_assistant_tool

import (
	"context"
	"encoding/json"
)

type ToolExecutor interface {
	Execute(ctx context.Context, name string, args json.RawMessage) (interface{}, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
