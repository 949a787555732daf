package get_schedule_buckets

import (
	"context"

	bucketsUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_schedule_buckets"
)

type BucketsUseCase interface {
	Execute(ctx context.Context, req *bucketsUC.Request) (*bucketsUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
