package get_week_grid

import (
	"context"

	gridUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar_grid"
)

type GridUseCase interface {
	Execute(ctx context.Context, req *gridUC.Request) (*gridUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
