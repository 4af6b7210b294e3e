package remove_blackout_date

import "context"

type BlackoutService interface {
	RemoveBlackoutDate(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
