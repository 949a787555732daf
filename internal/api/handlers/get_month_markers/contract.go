package get_month_markers

import (
	"context"

	markersUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_month_markers"
)

type MarkersUseCase interface {
	Execute(ctx context.Context, req *markersUC.Request) (*markersUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
